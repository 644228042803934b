// Package input models the per-tick input the host hands to the simulation:
// which logical actions are held, and which were pressed this frame.
package input

import (
	"fmt"
	"strings"
)

// Action is a logical input, independent of the physical key bound to it.
type Action uint8

const (
	TurnLeft Action = iota
	TurnRight
	Boost
	Fire
	Reset
	actionCount
)

var actionNames = [actionCount]string{
	TurnLeft:  "turn-left",
	TurnRight: "turn-right",
	Boost:     "boost",
	Fire:      "fire",
	Reset:     "reset",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction maps a logical name ("fire", "turn-left", ...) to its Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown input action %q", name)
}

// UnmarshalText lets actions be named in YAML/TOML files.
func (a *Action) UnmarshalText(text []byte) error {
	v, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Snapshot is the input state for one tick. The zero value has nothing held.
type Snapshot struct {
	held    uint32
	pressed uint32
}

// Hold marks a as held down for this tick.
func (s *Snapshot) Hold(a Action) {
	s.held |= 1 << a
}

// Press marks a as pressed this tick. A press is also a hold.
func (s *Snapshot) Press(a Action) {
	s.pressed |= 1 << a
	s.held |= 1 << a
}

// Held reports whether a is currently down.
func (s Snapshot) Held(a Action) bool {
	return s.held&(1<<a) != 0
}

// JustPressed reports whether a went down this tick (edge, not level).
func (s Snapshot) JustPressed(a Action) bool {
	return s.pressed&(1<<a) != 0
}

// Empty reports whether nothing is held or pressed.
func (s Snapshot) Empty() bool {
	return s.held == 0 && s.pressed == 0
}

func (s Snapshot) String() string {
	var parts []string
	for a := Action(0); a < actionCount; a++ {
		switch {
		case s.JustPressed(a):
			parts = append(parts, "+"+a.String())
		case s.Held(a):
			parts = append(parts, a.String())
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Of builds a snapshot holding the given actions.
func Of(held ...Action) Snapshot {
	var s Snapshot
	for _, a := range held {
		s.Hold(a)
	}
	return s
}

// Source supplies one snapshot per tick. Hosts implement it over their
// keyboard API; replays implement it over a recorded script.
type Source interface {
	Poll() Snapshot
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Snapshot

func (f SourceFunc) Poll() Snapshot { return f() }
