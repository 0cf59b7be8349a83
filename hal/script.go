package hal

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseScript parses pointer samples of the form "x,y[,down|up]" separated
// by ';'. A sample without a button field is released.
//
//	100,100,down;150,100,down;150,100,up
func ParseScript(s string) ([]PointerState, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []PointerState
	for i, raw := range strings.Split(s, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		fields := strings.Split(raw, ",")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("script sample %d %q: want x,y[,down|up]", i, raw)
		}
		x, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("script sample %d: x: %w", i, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("script sample %d: y: %w", i, err)
		}
		st := PointerState{X: x, Y: y}
		if len(fields) == 3 {
			switch strings.ToLower(strings.TrimSpace(fields[2])) {
			case "down":
				st.Pressed = true
			case "up":
			default:
				return nil, fmt.Errorf("script sample %d: button %q: want down or up", i, fields[2])
			}
		}
		out = append(out, st)
	}
	return out, nil
}
