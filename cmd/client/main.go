// Command client is a minimal line-oriented Nuggets client: it connects
// as a named player or a spectator, forwards stdin keystrokes as KEY
// messages, and prints incoming server datagrams. The terminal UI the
// original client drew with ncurses is out of scope here; this client
// exists to drive and observe the protocol, not to render it richly.
//
// Usage: client hostname port [playerName]
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/protocol"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/transport/udp"
)

func main() {
	if err := run(); err != nil {
		log.Printf("client: %v", err)
		os.Exit(1)
	}
}

func run() error {
	hostname, port, playerName, err := parseArgs(os.Args)
	if err != nil {
		return fmt.Errorf("usage: %s hostname port [playerName]: %w", os.Args[0], err)
	}
	isSpectator := playerName == ""

	tr, err := udp.Dial(hostname + ":" + port)
	if err != nil {
		return fmt.Errorf("connecting to %s:%s: %w", hostname, port, err)
	}
	defer tr.Close()

	if isSpectator {
		fmt.Println("spectating")
		if err := tr.SendTo(nil, protocol.FormatSpectate()); err != nil {
			return fmt.Errorf("sending SPECTATE: %w", err)
		}
	} else {
		fmt.Printf("playing as %s\n", playerName)
		if err := tr.SendTo(nil, protocol.FormatPlay(playerName)); err != nil {
			return fmt.Errorf("sending PLAY: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go readKeystrokes(tr, done)
	go func() {
		if err := <-done; err != nil {
			log.Printf("client: keystroke forwarding stopped: %v", err)
		}
		cancel()
	}()

	var playerID byte
	for {
		_, body, err := tr.ReceiveFrom(ctx)
		if err != nil {
			return fmt.Errorf("receiving: %w", err)
		}
		msg, err := protocol.ParseServer(body)
		if err != nil {
			log.Printf("client: %v", err)
			continue
		}

		switch msg.Kind {
		case protocol.KindOK:
			playerID = msg.Letter
			fmt.Printf("OK: you are player %c\n", playerID)
		case protocol.KindGrid:
			fmt.Printf("GRID: %d rows x %d cols\n", msg.Rows, msg.Cols)
		case protocol.KindGold:
			if msg.Gold > 0 {
				fmt.Printf("GOLD: received %d nuggets\n", msg.Gold)
			}
			fmt.Printf("you have %d nuggets, %d unclaimed\n", msg.Purse, msg.Remain)
		case protocol.KindDisplay:
			fmt.Print(msg.Body)
		case protocol.KindError:
			fmt.Printf("ERROR: %s\n", msg.Body)
		case protocol.KindQuit:
			fmt.Printf("QUIT: %s\n", msg.Body)
			cancel()
			return nil
		}
	}
}

// readKeystrokes forwards one KEY message per non-empty input line,
// using the line's first byte as the keystroke. It runs in its own
// goroutine since stdin reads and UDP reads can't share a select loop
// without a raw terminal, which is out of scope here.
func readKeystrokes(tr *udp.Transport, done chan<- error) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if err := tr.SendTo(nil, protocol.FormatKey(line[0])); err != nil {
			done <- err
			return
		}
	}
	done <- scanner.Err()
}

func parseArgs(argv []string) (hostname, port, playerName string, err error) {
	if len(argv) != 3 && len(argv) != 4 {
		return "", "", "", fmt.Errorf("wrong number of arguments")
	}
	hostname = argv[1]
	port = argv[2]
	if len(argv) == 4 {
		playerName = argv[3]
	}
	return hostname, port, playerName, nil
}
