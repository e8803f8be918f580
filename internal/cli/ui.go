package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gridpush/gridpush/pkg/grid"
)

// ANSI 256 palette shared by every command. Keeping the raw codes in one
// place lets the whole CLI shift tone together.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Exported styles are shared with the interactive editor in tui.go.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
	StyleError     = lipgloss.NewStyle().Foreground(colorRed)
)

var (
	styleMuted       = lipgloss.NewStyle().Foreground(colorGray)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// Status glyphs. Every command prefixes its result lines with one of these
// so output scans at a glance.
const (
	glyphOK    = "✓"
	glyphFail  = "✗"
	glyphWarn  = "!"
	glyphNote  = "›"
	glyphArrow = "→"
)

func printSuccess(format string, args ...any) {
	fmt.Println(StyleSuccess.Render(glyphOK) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(StyleError.Render(glyphFail) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(StyleWarning.Render(glyphWarn + " " + fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleMuted.Render(glyphNote) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line under a status message.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path a command wrote, indented under its status line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(glyphArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value with the label padded to a fixed width
// so consecutive lines column-align.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints a dim one-line summary under a command's main output,
// e.g. "  4 components · cached".
func printStats(componentCount int, cached bool) {
	var b strings.Builder
	b.WriteString("  ")
	if componentCount > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d components", componentCount)))
		b.WriteString(StyleDim.Render(" · "))
	}
	if cached {
		b.WriteString(StyleSuccess.Render("cached"))
	} else {
		b.WriteString(styleMuted.Render("fresh"))
	}
	fmt.Println(b.String())
}

// printViolation prints a single validator finding with the affected IDs.
func printViolation(v grid.Violation) {
	printError("%s: %s", v.Kind, v.Message)
	if len(v.ComponentIDs) > 0 {
		printDetail("affected: %s", strings.Join(v.ComponentIDs, ", "))
	}
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
