// internal/badge/render.go
//
// SVG install-badge synthesis.
//
/*
Context
--------
Render turns a validated config into a self-contained two-segment badge:
the label ("Install") on a grey segment, the app name on a colored one.

Segment widths come from a character-count heuristic, not real text
metrics: label chars * 6 + 10 and name chars * 7 + 10.  Badges rendered
here are embedded in READMEs all over, so the formula and the markup
layout are load-bearing — changing either changes every existing badge
pixel-for-pixel and is a breaking change.

Two layouts exist.  "flat" draws the gradient/clip-path treatment with
shadowed text; any other style value degrades to a plain two-rect badge.

Label, name, and color are interpolated verbatim (no XML escaping),
matching the badges already in circulation.  See DESIGN.md for the
trade-off.
*/
package badge

import (
	"fmt"
	"strings"

	"github.com/installbridge/installbridge/internal/bridge"
)

const height = 20

// Render produces standalone SVG markup for cfg's badge.
func Render(cfg bridge.Config) string {
	label := cfg.BadgeLabel()
	color := cfg.BadgeColor()

	labelWidth := len(label)*6 + 10
	nameWidth := len(cfg.Name)*7 + 10
	totalWidth := labelWidth + nameWidth

	if cfg.BadgeStyle() == "flat" {
		return renderFlat(label, cfg.Name, color, labelWidth, nameWidth, totalWidth)
	}
	return renderPlain(label, cfg.Name, color, labelWidth, nameWidth, totalWidth)
}

// renderFlat emits the gradient/clip layout: rounded corners via a
// clip path, a subtle vertical gradient overlay, and a #010101 shadow
// copy behind each text run for the anti-aliased look.
func renderFlat(label, name, color string, labelWidth, nameWidth, totalWidth int) string {
	labelX := labelWidth / 2
	nameX := labelWidth + nameWidth/2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n",
		totalWidth, height)
	b.WriteString(`  <linearGradient id="smooth" x2="0" y2="100%">` + "\n")
	b.WriteString(`    <stop offset="0" stop-color="#bbb" stop-opacity=".1"/>` + "\n")
	b.WriteString(`    <stop offset="1" stop-opacity=".1"/>` + "\n")
	b.WriteString(`  </linearGradient>` + "\n")
	fmt.Fprintf(&b, `  <clipPath id="round"><rect width="%d" height="%d" rx="3" fill="#fff"/></clipPath>`+"\n",
		totalWidth, height)
	b.WriteString(`  <g clip-path="url(#round)">` + "\n")
	fmt.Fprintf(&b, `    <rect width="%d" height="%d" fill="#555"/>`+"\n", labelWidth, height)
	fmt.Fprintf(&b, `    <rect x="%d" width="%d" height="%d" fill="%s"/>`+"\n",
		labelWidth, nameWidth, height, color)
	fmt.Fprintf(&b, `    <rect width="%d" height="%d" fill="url(#smooth)"/>`+"\n", totalWidth, height)
	b.WriteString(`  </g>` + "\n")
	b.WriteString(`  <g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">` + "\n")
	fmt.Fprintf(&b, `    <text x="%d" y="15" fill="#010101" fill-opacity=".3">%s</text>`+"\n", labelX, label)
	fmt.Fprintf(&b, `    <text x="%d" y="14">%s</text>`+"\n", labelX, label)
	fmt.Fprintf(&b, `    <text x="%d" y="15" fill="#010101" fill-opacity=".3">%s</text>`+"\n", nameX, name)
	fmt.Fprintf(&b, `    <text x="%d" y="14">%s</text>`+"\n", nameX, name)
	b.WriteString(`  </g>` + "\n")
	b.WriteString(`</svg>`)
	return b.String()
}

// renderPlain is the fallback layout for unrecognized styles: two flat
// rects, two text runs, no gradient or clip.
func renderPlain(label, name, color string, labelWidth, nameWidth, totalWidth int) string {
	labelX := labelWidth / 2
	nameX := labelWidth + nameWidth/2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n",
		totalWidth, height)
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="#555"/>`+"\n", labelWidth, height)
	fmt.Fprintf(&b, `  <rect x="%d" width="%d" height="%d" fill="%s"/>`+"\n",
		labelWidth, nameWidth, height, color)
	b.WriteString(`  <g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">` + "\n")
	fmt.Fprintf(&b, `    <text x="%d" y="14">%s</text>`+"\n", labelX, label)
	fmt.Fprintf(&b, `    <text x="%d" y="14">%s</text>`+"\n", nameX, name)
	b.WriteString(`  </g>` + "\n")
	b.WriteString(`</svg>`)
	return b.String()
}
