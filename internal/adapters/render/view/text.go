package view

import (
	"fmt"
	"html"
	"math"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
)

const transcriptTimeLayout = "2/1/2006, 15:04:05"

var (
	plainText      = bluemonday.StrictPolicy()
	blockBreaks    = regexp.MustCompile(`(?i)<br\s*/?>|</p\s*>|</li\s*>|</h[1-6]\s*>`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// PlainText strips markup from server supplied text so it can be printed to a
// terminal. Line breaks implied by block elements are kept.
func PlainText(raw string) string {
	if raw == "" {
		return ""
	}

	withBreaks := blockBreaks.ReplaceAllString(raw, "\n")
	stripped := html.UnescapeString(plainText.Sanitize(withBreaks))
	stripped = excessNewlines.ReplaceAllString(stripped, "\n\n")

	return strings.TrimSpace(stripped)
}

func renderProgressBar(percent int, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * float64(clampPercent(percent)) / 100))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func progressLine(label string, percent, completed, total int, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.header.Render(label),
		" ",
		renderProgressBar(percent, 24, s),
		" ",
		s.barText.Render(fmt.Sprintf("%d%% (%d/%d)", percent, completed, total)),
	)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
