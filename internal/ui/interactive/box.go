package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bretwardjames/ghp-sub000/internal/ui/styles"
)

const (
	// DefaultMaxLines is how many lines of text a box shows by default.
	DefaultMaxLines = 10
	// BoxWidth is the inner width of a box in terminal cells.
	BoxWidth = 60

	ellipsis = "…"
)

// FormatBox renders text under a title in a rounded box BoxWidth cells
// wide. Lines wider than the box are cut with an ellipsis; lines past
// maxLines are replaced by a "… (N more lines)" marker. maxLines <= 0
// means DefaultMaxLines.
func FormatBox(title, text string, maxLines int) string {
	return renderBox(styles.RoundedBorder, title, text, maxLines)
}

// FormatErrorBox is FormatBox with an error-colored border.
func FormatErrorBox(title, text string, maxLines int) string {
	return renderBox(styles.ErrorBorder, title, text, maxLines)
}

func renderBox(style lipgloss.Style, title, text string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	hidden := 0
	if len(lines) > maxLines {
		hidden = len(lines) - maxLines
		lines = lines[:maxLines]
	}

	body := make([]string, 0, len(lines)+3)
	body = append(body, styles.Bold.Render(fitLine(title)), "")
	for _, line := range lines {
		body = append(body, fitLine(line))
	}
	if hidden > 0 {
		body = append(body, styles.MutedStyle.Render(fmt.Sprintf("%s (%d more lines)", ellipsis, hidden)))
	}

	// Width covers the content plus the one-cell padding on each side.
	return style.Width(BoxWidth + 2).Render(strings.Join(body, "\n"))
}

// fitLine expands tabs and cuts a line to BoxWidth cells.
func fitLine(line string) string {
	line = strings.ReplaceAll(line, "\t", "    ")
	line = strings.ReplaceAll(line, "\r", "")
	return ansi.Truncate(line, BoxWidth, ellipsis)
}
