package protocol

import "testing"

func TestParseClientPlay(t *testing.T) {
	msg, err := ParseClient("PLAY Alice")
	if err != nil {
		t.Fatalf("ParseClient: %v", err)
	}
	if msg.Kind != KindPlay || msg.Name != "Alice" {
		t.Fatalf("got %+v", msg)
	}
}

func TestParseClientPlayEmptyName(t *testing.T) {
	msg, err := ParseClient("PLAY")
	if err != nil {
		t.Fatalf("ParseClient: %v", err)
	}
	if msg.Kind != KindPlay || msg.Name != "" {
		t.Fatalf("got %+v", msg)
	}
}

func TestParseClientSpectate(t *testing.T) {
	msg, err := ParseClient("SPECTATE")
	if err != nil {
		t.Fatalf("ParseClient: %v", err)
	}
	if msg.Kind != KindSpectate {
		t.Fatalf("got %+v", msg)
	}
}

func TestParseClientKey(t *testing.T) {
	msg, err := ParseClient("KEY h")
	if err != nil {
		t.Fatalf("ParseClient: %v", err)
	}
	if msg.Kind != KindKey || msg.Key != 'h' {
		t.Fatalf("got %+v", msg)
	}
}

func TestParseClientKeyBadLength(t *testing.T) {
	if _, err := ParseClient("KEY ab"); err == nil {
		t.Fatal("expected error for multi-character KEY")
	}
	if _, err := ParseClient("KEY"); err == nil {
		t.Fatal("expected error for KEY with no argument")
	}
}

func TestParseClientUnknown(t *testing.T) {
	if _, err := ParseClient("DANCE"); err == nil {
		t.Fatal("expected error for unrecognized message kind")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	if got := FormatOK('A'); got != "OK A" {
		t.Errorf("FormatOK = %q", got)
	}
	if got := FormatGrid(21, 79); got != "GRID 21 79" {
		t.Errorf("FormatGrid = %q", got)
	}
	if got := FormatGold(10, 10, 290); got != "GOLD 10 10 290" {
		t.Errorf("FormatGold = %q", got)
	}
	if got := FormatQuit("GAME OVER:\nA       300 Alice\n"); got != "QUIT GAME OVER:\nA       300 Alice\n" {
		t.Errorf("FormatQuit = %q", got)
	}
	if got := FormatDisplay("+--+\n|..|\n+--+\n"); got != "DISPLAY\n+--+\n|..|\n+--+\n" {
		t.Errorf("FormatDisplay = %q", got)
	}
}
