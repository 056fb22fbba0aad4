// Package protocol parses and formats the UTF-8 text datagram grammar
// exchanged between client and server.
package protocol

import (
	"fmt"
	"strings"
)

// Client message kinds.
const (
	KindPlay     = "PLAY"
	KindSpectate = "SPECTATE"
	KindKey      = "KEY"
)

// Server message kinds.
const (
	KindOK      = "OK"
	KindGrid    = "GRID"
	KindGold    = "GOLD"
	KindDisplay = "DISPLAY"
	KindError   = "ERROR"
	KindQuit    = "QUIT"
)

// ClientMessage is a parsed inbound datagram.
type ClientMessage struct {
	Kind string
	Name string // PLAY only
	Key  byte   // KEY only
}

// ParseClient parses a single inbound datagram body into a ClientMessage.
// Unknown message kinds return an error; the caller decides how to react
// (spec.md treats this as a protocol-level client error, not fatal).
func ParseClient(line string) (ClientMessage, error) {
	line = strings.TrimRight(line, "\r\n")
	sp := strings.IndexByte(line, ' ')
	var kind, rest string
	if sp < 0 {
		kind, rest = line, ""
	} else {
		kind, rest = line[:sp], line[sp+1:]
	}

	switch kind {
	case KindPlay:
		return ClientMessage{Kind: KindPlay, Name: rest}, nil
	case KindSpectate:
		return ClientMessage{Kind: KindSpectate}, nil
	case KindKey:
		if len(rest) != 1 {
			return ClientMessage{}, fmt.Errorf("protocol: KEY requires exactly one character, got %q", rest)
		}
		return ClientMessage{Kind: KindKey, Key: rest[0]}, nil
	default:
		return ClientMessage{}, fmt.Errorf("protocol: unrecognized message kind %q", kind)
	}
}

// FormatPlay formats an outbound PLAY datagram (used by the client).
func FormatPlay(name string) string { return KindPlay + " " + name }

// FormatSpectate formats an outbound SPECTATE datagram.
func FormatSpectate() string { return KindSpectate }

// FormatKey formats an outbound KEY datagram.
func FormatKey(key byte) string { return fmt.Sprintf("%s %c", KindKey, key) }

// FormatOK formats the OK <L> acceptance datagram.
func FormatOK(letter byte) string {
	return fmt.Sprintf("%s %c", KindOK, letter)
}

// FormatGrid formats the GRID <nrows> <ncols> datagram.
func FormatGrid(rows, cols int) string {
	return fmt.Sprintf("%s %d %d", KindGrid, rows, cols)
}

// FormatGold formats the GOLD <n> <p> <r> datagram.
func FormatGold(justCollected, purse, remaining int) string {
	return fmt.Sprintf("%s %d %d %d", KindGold, justCollected, purse, remaining)
}

// FormatDisplay formats the DISPLAY\n<rows> datagram. body must already
// end in a trailing newline, one per row.
func FormatDisplay(body string) string {
	return KindDisplay + "\n" + body
}

// FormatError formats a non-fatal ERROR datagram.
func FormatError(text string) string {
	return KindError + " " + text
}

// FormatQuit formats a session-terminating QUIT datagram.
func FormatQuit(text string) string {
	return KindQuit + " " + text
}
