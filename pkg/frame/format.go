package frame

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Number formats accepted by Rescale.
const (
	FormatMillions     = "M"
	FormatMillionsLong = "mil"
	FormatBillions     = "B"
	FormatBillionsLong = "bil"
)

// Rescale divides every numeric cell by one million ("M", "mil") or one
// billion ("B", "bil"). Millions keep one decimal; billions are rounded to
// one decimal in scientific notation. A result whose text ends in "0" is
// stored as an int64, anything else as a float64. Index labels and
// non-numeric cells are left alone.
func (t *Table) Rescale(format string) (*Table, error) {
	var render func(float64) string
	switch format {
	case FormatMillions, FormatMillionsLong:
		render = func(v float64) string { return fmt.Sprintf("%.1f", v/1e6) }
	case FormatBillions, FormatBillionsLong:
		render = func(v float64) string { return fmt.Sprintf("%.1e", v/1e9) }
	default:
		return nil, &NumberFormatError{Format: format}
	}

	out := t.clone()
	for _, row := range out.rows {
		for c, v := range row {
			f, ok := toFloat(v)
			if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
				continue
			}
			scaled, err := coerce(render(f))
			if err != nil {
				return nil, fmt.Errorf("rescale %v: %w", v, err)
			}
			row[c] = scaled
		}
	}
	return out, nil
}

// coerce turns formatted text back into a number: int64 when the text ends
// in a zero digit, float64 otherwise.
func coerce(s string) (any, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(s, "0") {
		return d.IntPart(), nil
	}
	f, _ := d.Float64()
	return f, nil
}
