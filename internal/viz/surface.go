package viz

import (
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// FormatSurface renders values as a parenthesized space-separated list, the
// same shape axes print in. This is the machine-consumable output format.
func FormatSurface(values []float64) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// Plot charts the value surface over its spots.
func Plot(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(14),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
}
