// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the hook list table.
package static

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bretwardjames/ghp-sub000/internal/hooks"
	"github.com/bretwardjames/ghp-sub000/internal/ui/styles"
)

// HookHeaders are the column headers matching HookTableRow.
var HookHeaders = []string{"NAME", "EVENT", "MODE", "TIMEOUT", "STATUS", "COMMAND"}

const maxCommandWidth = 50

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// HookTableRow formats a hook for the list table.
func HookTableRow(h hooks.Hook) []string {
	status := styles.SuccessStyle.Render("enabled")
	if !h.Enabled {
		status = styles.MutedStyle.Render("disabled")
	}

	command := strings.Join(strings.Fields(h.Command), " ")
	if len(command) > maxCommandWidth {
		command = command[:maxCommandWidth-3] + "..."
	}

	return []string{
		h.Name,
		string(h.Event),
		string(h.Mode),
		strconv.Itoa(h.TimeoutMs) + "ms",
		status,
		command,
	}
}
