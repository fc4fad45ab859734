package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/wheel-of-names/constants"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

// FormatNames renders entries one per line. Entries with a non-default
// weight are written as name:weight.
func FormatNames(entries []wheel.Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Name)
		if e.Weight != constants.DefaultWeight {
			b.WriteByte(':')
			b.WriteString(strconv.FormatFloat(e.Weight, 'f', -1, 64))
		}
	}
	return b.String()
}

// ParseNames reads the FormatNames text form. Blank lines are skipped. A
// trailing :number suffix sets the weight, clamped to the editor range; a
// suffix that is not a number stays part of the name.
func ParseNames(text string) ([]wheel.Entry, error) {
	var out []wheel.Entry
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, weight := line, constants.DefaultWeight
		if i := strings.LastIndexByte(line, ':'); i >= 0 {
			if w, err := strconv.ParseFloat(strings.TrimSpace(line[i+1:]), 64); err == nil {
				if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
					return nil, fmt.Errorf("%w: line %d: weight must be positive", wheel.ErrInvalidInput, n+1)
				}
				name = strings.TrimSpace(line[:i])
				weight = ClampWeight(w)
			}
		}
		if name == "" {
			return nil, fmt.Errorf("%w: line %d: empty name", wheel.ErrInvalidInput, n+1)
		}
		out = append(out, wheel.Entry{Name: name, Weight: weight})
	}
	return out, nil
}

// ClampWeight bounds w to the range the weight editor allows
func ClampWeight(w float64) float64 {
	return math.Max(constants.MinWeight, math.Min(constants.MaxWeight, w))
}
