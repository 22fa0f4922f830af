// Package perfdata renders Nagios plugin performance data entries.
package perfdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NaN is written in place of any absent value.
const NaN = "NaN"

// Metric is one performance data entry: 'label'=value;warn;crit;min;max.
// Nil fields render as NaN.
type Metric struct {
	Label string
	Value *float64
	Unit  string // appended to Value only
	Warn  *float64
	Crit  *float64
	Min   *float64
	Max   *float64
}

// String renders the entry.
func (m Metric) String() string {
	value := NaN
	if m.Value != nil {
		value = FormatFloat(*m.Value) + m.Unit
	}

	fields := []string{
		value,
		optional(m.Warn),
		optional(m.Crit),
		optional(m.Min),
		optional(m.Max),
	}
	return fmt.Sprintf("'%s'=%s", m.Label, strings.Join(fields, ";"))
}

func optional(v *float64) string {
	if v == nil {
		return NaN
	}
	return FormatFloat(*v)
}

// FormatFloat renders v in its shortest round-trip form. Values from 1e-4
// up to 1e16 are written in fixed notation with at least one decimal
// (10 -> "10.0", 55.23 -> "55.23"); anything else uses an exponent
// ("1e-05", "1.2345678901234568e+16").
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return NaN
	}
	if math.IsInf(v, 0) {
		if v > 0 {
			return "inf"
		}
		return "-inf"
	}
	if v != 0 {
		if abs := math.Abs(v); abs >= 1e16 || abs < 1e-4 {
			return strconv.FormatFloat(v, 'e', -1, 64)
		}
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
