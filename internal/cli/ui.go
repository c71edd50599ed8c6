package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hanworks/hanset/pkg/analyzer"
	"github.com/hanworks/hanset/pkg/charset"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + styleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + styleValue.Render(value))
}

// =============================================================================
// Distribution Display
// =============================================================================

// distributionBarWidth is the width of the widest histogram bar.
const distributionBarWidth = 40

// bucketCounts reduces a bucket map to per-stroke sizes.
func bucketCounts(b charset.Buckets) map[int]int {
	counts := make(map[int]int, len(b))
	for n, s := range b {
		counts[n] = s.Len()
	}
	return counts
}

// printDistribution renders a per-stroke character histogram with
// proportional bars, the way the preview flag reports a run.
func printDistribution(counts map[int]int, unknown int) {
	fmt.Println(styleTitle.Render("Stroke distribution"))

	strokes := make([]int, 0, len(counts))
	max := 0
	for n, c := range counts {
		strokes = append(strokes, n)
		if c > max {
			max = c
		}
	}
	sort.Ints(strokes)

	for _, n := range strokes {
		count := counts[n]
		width := 0
		if max > 0 {
			width = count * distributionBarWidth / max
		}
		fmt.Printf("%s %s %s\n",
			styleDim.Render(fmt.Sprintf("%3d画", n)),
			styleNumber.Render(fmt.Sprintf("%5d", count)),
			styleDim.Render(strings.Repeat("█", width)))
	}
	if unknown > 0 {
		fmt.Printf("%s %s\n",
			styleWarning.Render(" 未知"),
			styleNumber.Render(fmt.Sprintf("%5d", unknown)))
	}
}

// =============================================================================
// Analyzer Report Display
// =============================================================================

// printReport renders an analyzer report.
func printReport(r analyzer.Report) {
	fmt.Println(styleTitle.Render("Charset analysis"))
	printKeyValue("unique", fmt.Sprintf("%d", r.Unique))
	printKeyValue("baseline", fmt.Sprintf("%d", r.BaselineCount))
	printKeyValue("delta", fmt.Sprintf("%+d", r.Delta))
	for _, c := range r.Sentinels {
		if c.Present {
			printSuccess("sentinel %c present", c.Char)
		} else {
			printError("sentinel %c missing", c.Char)
		}
	}
	fmt.Println()
	printDistribution(r.Histogram, r.Unknown)
}
