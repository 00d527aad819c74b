package cli

import (
	"bufio"
	"candyboard/src/base"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrBadScript = errors.New("bad replay script")

type StepKind uint8

const (
	StepSize StepKind = iota
	StepPress
	StepRelease
	StepTick
)

func (k StepKind) String() string {
	switch k {
	case StepSize:
		return "size"
	case StepPress:
		return "press"
	case StepRelease:
		return "release"
	case StepTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Step is one script line. X and Y carry the size for StepSize and the
// pointer position for press/release.
type Step struct {
	Kind StepKind
	X, Y float64
	Line int
}

// ParseScript reads a replay script:
//
//	# comment
//	size 800 800
//	press 450 750
//	release 450 750
//	tick
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		st := Step{Line: line}
		switch fields[0] {
		case "size":
			st.Kind = StepSize
		case "press":
			st.Kind = StepPress
		case "release":
			st.Kind = StepRelease
		case "tick":
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: tick takes no arguments", ErrBadScript, line)
			}
			steps = append(steps, Step{Kind: StepTick, Line: line})
			continue
		default:
			return nil, fmt.Errorf("%w: line %d: unknown command %q", ErrBadScript, line, fields[0])
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: %s needs two numbers", ErrBadScript, line, fields[0])
		}
		var err error
		if st.X, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadScript, line, err)
		}
		if st.Y, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadScript, line, err)
		}
		if st.Kind == StepSize && (st.Y <= 0 || st.X < st.Y) {
			return nil, fmt.Errorf("%w: line %d: size needs W >= H > 0", ErrBadScript, line)
		}
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func (s Step) Size() base.Size {
	return base.Size{W: s.X, H: s.Y}
}

func (s Step) Pos() base.Point {
	return base.Point{X: s.X, Y: s.Y}
}
