package display

import "fmt"

// State is the display's mode between keystrokes
type State int

const (
	// Editing means the display holds an expression being typed
	Editing State = iota
	// ShowingSolution means the display holds the result of the last solve;
	// the next digit starts a new expression while an operator continues it
	ShowingSolution
	// ShowingError means the display holds an error text; any edit clears it
	ShowingError
)

// String returns the state name used on the wire and in storage
func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case ShowingSolution:
		return "solution"
	case ShowingError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ParseState parses a state name produced by String
func ParseState(name string) (State, error) {
	switch name {
	case "editing", "":
		return Editing, nil
	case "solution":
		return ShowingSolution, nil
	case "error":
		return ShowingError, nil
	default:
		return Editing, fmt.Errorf("unknown display state %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Snapshot is the persistable part of a session
type Snapshot struct {
	Text  string `json:"text"`
	State State  `json:"state"`
}
