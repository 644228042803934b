package data

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fuelrun/jerrycan/internal/input"
)

// ReplayFrame is one scripted input state, repeated Repeat times (default 1).
type ReplayFrame struct {
	Repeat int            `yaml:"repeat"`
	DT     time.Duration  `yaml:"dt"` // overrides the replay dt for these ticks
	Hold   []input.Action `yaml:"hold"`
	Press  []input.Action `yaml:"press"`
}

// Replay is a headless input script.
type Replay struct {
	Name   string        `yaml:"name"`
	Seed   int64         `yaml:"seed"`
	DT     time.Duration `yaml:"dt"`
	Frames []ReplayFrame `yaml:"frames"`
}

// ReplayStep is one expanded tick of a replay.
type ReplayStep struct {
	DT    time.Duration
	Input input.Snapshot
}

// Steps expands frames into one entry per tick. A press is an edge, so only
// the first tick of a repeated frame carries it; later ticks see it held.
func (r *Replay) Steps() []ReplayStep {
	var out []ReplayStep
	for _, f := range r.Frames {
		var level input.Snapshot
		for _, a := range f.Hold {
			level.Hold(a)
		}
		edge := level
		for _, a := range f.Press {
			level.Hold(a)
			edge.Press(a)
		}
		dt := r.DT
		if f.DT > 0 {
			dt = f.DT
		}
		n := f.Repeat
		if n <= 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			s := level
			if i == 0 {
				s = edge
			}
			out = append(out, ReplayStep{DT: dt, Input: s})
		}
	}
	return out
}

// ParseReplay decodes a replay script.
func ParseReplay(raw []byte) (*Replay, error) {
	var r Replay
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("parse replay: %w", err)
	}
	if r.DT <= 0 {
		return nil, errors.New("replay: dt must be positive")
	}
	return &r, nil
}

// LoadReplay loads a replay script from a YAML file.
func LoadReplay(path string) (*Replay, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	r, err := ParseReplay(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if r.Name == "" {
		r.Name = path
	}
	return r, nil
}
