// Package report renders the per-drink sales summary as a chart
// artifact.  The output is an opaque renderable blob from the
// caller's point of view; an empty summary produces no artifact.
package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/ValenJ7/Sistema-Boliche/internal/service"
)

const (
	chartWidth  = 640
	barHeight   = 28
	barGap      = 10
	labelWidth  = 200
	chartMargin = 16
)

// RenderDrinkChart draws a horizontal bar chart of revenue per drink
// as SVG.  Rows are drawn in the order given, which the summary
// service already sorts by revenue.  It returns (nil, false) when
// there is nothing to draw.
func RenderDrinkChart(rows []service.DrinkSummary) ([]byte, bool) {
	if len(rows) == 0 {
		return nil, false
	}
	var max int64
	for _, r := range rows {
		if r.TotalCents > max {
			max = r.TotalCents
		}
	}
	if max == 0 {
		max = 1
	}

	height := chartMargin*2 + len(rows)*(barHeight+barGap) - barGap
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="sans-serif" font-size="13">`,
		chartWidth, height)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="#ffffff"/>`, chartWidth, height)

	plotWidth := chartWidth - labelWidth - chartMargin*2
	for i, r := range rows {
		y := chartMargin + i*(barHeight+barGap)
		w := int(int64(plotWidth) * r.TotalCents / max)
		if w < 1 {
			w = 1
		}
		label := fmt.Sprintf("%s (x%d)", r.Name, r.Quantity)
		fmt.Fprintf(&buf, `<text x="%d" y="%d" dominant-baseline="middle">%s</text>`,
			chartMargin, y+barHeight/2, html.EscapeString(label))
		fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="#4e79a7"/>`,
			chartMargin+labelWidth, y, w, barHeight)
		fmt.Fprintf(&buf, `<text x="%d" y="%d" dominant-baseline="middle" fill="#333333">%s</text>`,
			chartMargin+labelWidth+w+6, y+barHeight/2, formatCents(r.TotalCents))
	}
	buf.WriteString(`</svg>`)
	return buf.Bytes(), true
}

// formatCents renders an amount of cents as "$123.45".
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
