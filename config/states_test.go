package config

import (
	"errors"
	"strings"
	"testing"
)

func TestStateStrings(t *testing.T) {
	want := map[StateID]string{
		StateMain:    "MAIN",
		StateSP:      "SP",
		StateHost:    "HOST",
		StateJoin:    "JOIN",
		StateOptions: "OPTIONS",
		StateQuit:    "QUIT",
	}
	for id, name := range want {
		if got := id.String(); got != name {
			t.Errorf("StateID(%d).String() = %q, want %q", int(id), got, name)
		}
	}

	if got := StateID(42).String(); got != "StateID(42)" {
		t.Errorf("out of range String() = %q", got)
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		in   string
		want StateID
	}{
		{"MAIN", StateMain},
		{"main", StateMain},
		{" Host ", StateHost},
		{"join", StateJoin},
		{"Options", StateOptions},
		{"sp", StateSP},
		{"QUIT", StateQuit},
	}

	for _, tt := range tests {
		got, err := ParseState(tt.in)
		if err != nil {
			t.Errorf("ParseState(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseState(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseStateSuggestsNearest(t *testing.T) {
	_, err := ParseState("OPTINS")
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
	if !strings.Contains(err.Error(), "did you mean OPTIONS?") {
		t.Errorf("expected suggestion in %q", err.Error())
	}
}

func TestParseStateNoSuggestionForGarbage(t *testing.T) {
	_, err := ParseState("xyzzyplugh")
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("unexpected suggestion in %q", err.Error())
	}
}

func TestParseStateEmpty(t *testing.T) {
	if _, err := ParseState(""); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState for empty name, got %v", err)
	}
}

func TestParseScreenState(t *testing.T) {
	if got, err := ParseScreenState("host"); err != nil || got != StateHost {
		t.Errorf("ParseScreenState(host) = %s, %v", got, err)
	}

	got, err := ParseScreenState("quit")
	if !errors.Is(err, ErrNotScreenState) {
		t.Fatalf("expected ErrNotScreenState for QUIT, got %v", err)
	}
	if got != StateMain {
		t.Errorf("rejected state = %s, want MAIN", got)
	}

	if _, err := ParseScreenState("lobby"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, got %v", err)
	}
}

func TestIsScreen(t *testing.T) {
	for s := StateMain; s < StateCount; s++ {
		if got, want := s.IsScreen(), s != StateQuit; got != want {
			t.Errorf("%s.IsScreen() = %v, want %v", s, got, want)
		}
	}
	if StateID(-1).IsScreen() {
		t.Error("negative state reported as a screen")
	}
}
