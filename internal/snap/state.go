package snap

import (
	"fmt"
	"strings"

	"github.com/1broseidon/snaptile/internal/platform"
)

// State is a window's snap state. Left and Right double as snap directions.
type State int

const (
	None State = iota
	Left
	Right
)

func (s State) String() string {
	switch s {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	if string(b) == "none" {
		*s = None
		return nil
	}
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Opposite returns Right for Left and Left for Right; None stays None.
func (s State) Opposite() State {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// IsDirection reports whether s is Left or Right.
func (s State) IsDirection() bool {
	return s == Left || s == Right
}

// ParseDirection accepts "left" or "right" (case-insensitive).
func ParseDirection(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return None, fmt.Errorf("invalid direction %q (want left or right)", s)
	}
}

// Record is the stored snap state of one window. Original is the frame
// captured when the window last left None.
type Record struct {
	State    State
	Original platform.Frame
}

// Store maps windows to their snap records. A window without a record is
// implicitly None. Store is not safe for concurrent use; the Engine goroutine
// owns it.
type Store struct {
	records map[platform.WindowID]Record
}

func NewStore() *Store {
	return &Store{records: make(map[platform.WindowID]Record)}
}

func (s *Store) Get(id platform.WindowID) (Record, bool) {
	r, ok := s.records[id]
	return r, ok
}

// State returns the window's state, None when unknown.
func (s *Store) State(id platform.WindowID) State {
	return s.records[id].State
}

func (s *Store) Put(id platform.WindowID, state State, original platform.Frame) {
	s.records[id] = Record{State: state, Original: original}
}

func (s *Store) Clear(id platform.WindowID) {
	delete(s.records, id)
}

func (s *Store) Len() int {
	return len(s.records)
}

// Snapshot returns a copy of all records.
func (s *Store) Snapshot() map[platform.WindowID]Record {
	out := make(map[platform.WindowID]Record, len(s.records))
	for id, r := range s.records {
		out[id] = r
	}
	return out
}
