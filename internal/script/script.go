// Package script replays recorded pointer strokes against a gesture
// tracker, so dig sequences can run headless and reproducibly.
package script

import (
	"errors"
	"fmt"
	"os"

	"dig2d/internal/clip"
	"dig2d/internal/gesture"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Stroke is one press-drag-release sequence. Op and Radius override the
// tracker's brush for this stroke only.
type Stroke struct {
	Op     string       `yaml:"op"`
	Radius float32      `yaml:"radius"`
	Points [][2]float32 `yaml:"points"`
	// Steps is the number of scheduler updates between points (default 1).
	Steps int `yaml:"steps"`
}

// Script is an ordered list of strokes.
type Script struct {
	Strokes []Stroke `yaml:"strokes"`
}

// Parse decodes a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	for i, st := range s.Strokes {
		if len(st.Points) == 0 {
			return nil, fmt.Errorf("script: stroke %d has no points", i)
		}
		if st.Op != "" {
			if _, err := clip.ParseOp(st.Op); err != nil {
				return nil, fmt.Errorf("script: stroke %d: %w", i, err)
			}
		}
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return Parse(data)
}

// Stats summarises a replay.
type Stats struct {
	Strokes  int
	Gestures int
	Updates  int
}

// Run replays every stroke through tr, stepping sched at dt between points,
// and drains the remaining gestures afterwards. Gesture failures are
// collected and returned together once the replay is done.
func (s *Script) Run(tr *gesture.Tracker, sched *gesture.Scheduler, dt float64) (Stats, error) {
	var st Stats
	var errs []error
	step := func(n int) {
		for i := 0; i < n; i++ {
			if err := sched.Update(dt); err != nil {
				errs = append(errs, err)
			}
			st.Updates++
		}
	}

	base := tr.Params()
	defer tr.SetParams(base)
	for _, stroke := range s.Strokes {
		p := base
		if stroke.Op != "" {
			p.Op, _ = clip.ParseOp(stroke.Op)
		}
		if stroke.Radius > 0 {
			p.Radius = stroke.Radius
		}
		tr.SetParams(p)
		steps := max(stroke.Steps, 1)

		for i, pt := range stroke.Points {
			v := mgl32.Vec2{pt[0], pt[1]}
			if i == 0 {
				tr.Began(v)
				st.Gestures++
			} else if tr.Moved(v) != nil {
				st.Gestures++
			}
			step(steps)
		}
		tr.Ended()
		st.Strokes++
	}

	n, err := sched.Drain(dt, 1<<16)
	st.Updates += n
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return st, fmt.Errorf("script: replay: %w", errors.Join(errs...))
	}
	return st, nil
}
