package models

import (
	"encoding/json"
	"strings"
)

// PlayState is the canonical transport state.
//
// The numeric encoding changed over the project's history. Decoding maps
// every encoding we have seen in the wild onto the three canonical values:
//
//	0 Playing   (all encodings agree)
//	1 Paused    (all encodings agree)
//	2 Offline   (canonical; also the old binary scheme's "Other")
//	3 Offline   (the old four-state scheme's explicit Offline)
//
// Anything else, including unparseable values, decodes as Offline: a state
// we cannot interpret is not something the widget should animate.
type PlayState int

const (
	StatePlaying PlayState = iota
	StatePaused
	StateOffline
)

func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "offline"
	}
}

// MarshalJSON always emits the canonical numeric encoding.
func (s PlayState) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(s))
}

// UnmarshalJSON accepts canonical and legacy numeric encodings plus the
// state names as strings. It never fails the payload.
func (s *PlayState) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = StateOffline
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		switch n {
		case 0:
			*s = StatePlaying
		case 1:
			*s = StatePaused
		default:
			*s = StateOffline
		}
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch strings.ToLower(name) {
		case "playing":
			*s = StatePlaying
		case "paused":
			*s = StatePaused
		default:
			*s = StateOffline
		}
		return nil
	}

	*s = StateOffline
	return nil
}
