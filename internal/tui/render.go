package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/deliverydesk/internal/comments"
	"github.com/akyairhashvil/deliverydesk/internal/models"
)

const minColumnWidth = 18

func (m BoardModel) View() string {
	if m.width == 0 {
		return "loading board..."
	}
	if m.commentsOpen {
		return m.viewComments()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewColumns())
	b.WriteString("\n")
	if m.adding {
		b.WriteString(m.theme.Input.Render(m.input.View()))
		b.WriteString("\n")
	}
	b.WriteString(m.viewFooter())
	return m.theme.Base.Render(b.String())
}

func (m BoardModel) viewHeader() string {
	parts := []string{m.theme.Header.Render("Delivery Board")}
	parts = append(parts, m.theme.Dim.Render(FormatSummary(m.projectProg)))
	if m.active != nil && m.sprintProg != nil {
		label := fmt.Sprintf("%s  %s", m.active.Name, FormatSprintWindow(*m.active))
		bar := m.sprintBar.ViewAs(float64(m.sprintProg.TimePercent) / 100)
		parts = append(parts, m.theme.Highlight.Render(label)+" "+bar)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

func (m BoardModel) viewColumns() string {
	colWidth := m.width/len(models.BoardColumns) - 4
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}

	rendered := make([]string, 0, len(models.BoardColumns))
	for i, status := range models.BoardColumns {
		rendered = append(rendered, m.viewColumn(i, status, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m BoardModel) viewColumn(idx int, status models.ItemStatus, width int) string {
	items := m.cols[status]

	title := FormatColumnTitle(status, len(items))
	if idx == m.focusedCol {
		title = m.theme.Focused.Render(title)
	} else {
		title = m.theme.Header.Render(title)
	}

	var lines []string
	lines = append(lines, title)
	for row, it := range items {
		lines = append(lines, m.viewItem(it, width, idx == m.focusedCol && row == m.focusedRow[idx]))
	}
	if len(items) == 0 {
		lines = append(lines, m.theme.Dim.Render("empty"))
	}

	border := lipgloss.NormalBorder()
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(m.theme.Border).
		Width(width).
		Padding(0, 1)
	return style.Render(strings.Join(lines, "\n"))
}

func (m BoardModel) viewItem(it models.WorkItem, width int, focused bool) string {
	label := ansi.Truncate(it.Title, width-4, "...")

	style := m.theme.Item
	switch {
	case it.Status == models.StatusDone:
		style = m.theme.DoneItem
	case it.Status == models.StatusBlocked:
		style = m.theme.Blocked
	case it.Priority == models.PriorityHigh || it.Priority == models.PriorityUrgent:
		style = m.theme.PriorityHigh
	}

	line := style.Render(label)
	if due := FormatDue(it.DueDate, time.Now()); due != "" {
		line += " " + m.theme.Dim.Render(due)
	}
	if focused {
		return m.theme.Focused.Render("> ") + line
	}
	return "  " + line
}

func (m BoardModel) viewComments() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Comments: " + m.commentItem.Title))
	b.WriteString("\n\n")

	flat := comments.Flatten(m.forest)
	if len(flat) == 0 {
		b.WriteString(m.theme.Dim.Render("No comments yet."))
		b.WriteString("\n")
	}
	for _, fn := range flat {
		indent := strings.Repeat("  ", fn.Level)
		meta := fmt.Sprintf("%s, %s", fn.Comment.AuthorRef, fn.Comment.CreatedAt.Format("Jan 2 15:04"))
		b.WriteString(indent + m.theme.Highlight.Render(meta) + "\n")
		b.WriteString(indent + m.theme.Item.Render(fn.Comment.Content) + "\n")
	}

	b.WriteString("\n")
	if m.replying {
		b.WriteString(m.theme.Input.Render(m.replyInput.View()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.theme.Dim.Render("r reply | esc back"))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + m.theme.Error.Render(m.errMsg))
	}
	return m.theme.Base.Render(b.String())
}

func (m BoardModel) viewFooter() string {
	help := "hjkl move | HJKL/shift+arrows reorder | a add | c comments | x delete | R refresh | q quit"
	out := m.theme.Dim.Render(help)
	if m.errMsg != "" {
		out += "\n" + m.theme.Error.Render(m.errMsg)
	}
	return out
}
