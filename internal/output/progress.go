package output

import (
	"fmt"
	"strings"
)

// lineWidth is the assumed terminal width for rules and default bars.
var lineWidth = 80

// SetWidth sets the terminal width used for section rules and default bar
// sizes. Widths below 20 are ignored.
func SetWidth(w int) {
	if w >= 20 {
		lineWidth = w
	}
}

// UsageBar renders a visual bar for a 0-100 percentage share. A width of
// zero or less picks a default proportional to the terminal width.
// Example: "██████░░░░ 60%"
func UsageBar(percentage int, width int) string {
	if width <= 0 {
		width = lineWidth / 4
	}
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case percentage >= 50:
		style = func(s string) string { return StyleError.Render(s) }
	case percentage >= 25:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleSuccess.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d%%", percentage)))
}

// TrendPercent returns a styled indicator for a usage trend percentage.
// Rising usage is bad news here, so positive trends render in the error
// style and falling trends in the success style.
func TrendPercent(trend int) string {
	if trend == 0 {
		return StyleMuted.Render("─")
	}
	if trend > 0 {
		return StyleError.Render(fmt.Sprintf("▲ +%d%%", trend))
	}
	return StyleSuccess.Render(fmt.Sprintf("▼ %d%%", trend))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", lineWidth-2))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
