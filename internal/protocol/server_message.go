package protocol

import (
	"fmt"
	"strings"
)

// ServerMessage is a parsed outbound-from-server datagram, used by the
// client to decide how to render an incoming packet.
type ServerMessage struct {
	Kind   string
	Letter byte   // OK
	Rows   int    // GRID
	Cols   int    // GRID
	Gold   int    // GOLD
	Purse  int    // GOLD
	Remain int    // GOLD
	Body   string // DISPLAY, ERROR, QUIT
}

// ParseServer parses a single received datagram into a ServerMessage.
func ParseServer(packet string) (ServerMessage, error) {
	nl := strings.IndexByte(packet, '\n')
	var first, rest string
	if nl < 0 {
		first, rest = packet, ""
	} else {
		first, rest = packet[:nl], packet[nl+1:]
	}
	sp := strings.IndexByte(first, ' ')
	var kind, fields string
	if sp < 0 {
		kind, fields = first, ""
	} else {
		kind, fields = first[:sp], first[sp+1:]
	}

	switch kind {
	case KindOK:
		if len(fields) == 0 {
			return ServerMessage{}, fmt.Errorf("protocol: OK missing letter")
		}
		return ServerMessage{Kind: KindOK, Letter: fields[0]}, nil
	case KindGrid:
		var rows, cols int
		if _, err := fmt.Sscanf(fields, "%d %d", &rows, &cols); err != nil {
			return ServerMessage{}, fmt.Errorf("protocol: malformed GRID %q: %w", fields, err)
		}
		return ServerMessage{Kind: KindGrid, Rows: rows, Cols: cols}, nil
	case KindGold:
		var n, p, r int
		if _, err := fmt.Sscanf(fields, "%d %d %d", &n, &p, &r); err != nil {
			return ServerMessage{}, fmt.Errorf("protocol: malformed GOLD %q: %w", fields, err)
		}
		return ServerMessage{Kind: KindGold, Gold: n, Purse: p, Remain: r}, nil
	case KindDisplay:
		return ServerMessage{Kind: KindDisplay, Body: rest}, nil
	case KindError:
		return ServerMessage{Kind: KindError, Body: fields}, nil
	case KindQuit:
		body := fields
		if rest != "" {
			body = fields + "\n" + rest
		}
		return ServerMessage{Kind: KindQuit, Body: body}, nil
	default:
		return ServerMessage{}, fmt.Errorf("protocol: unrecognized server message kind %q", kind)
	}
}
