package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/agebook/internal/directory"
	"github.com/jask/agebook/internal/form"
)

func (a *App) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		a.renderBoard(),
		a.renderFooter(),
	)
	if a.modal != modalNone {
		return overlayCenter(body, a.renderModal(), a.width, a.height)
	}
	return body
}

func (a *App) renderHeader() string {
	search := "(none)"
	if a.search != "" {
		search = strconv.Quote(a.search)
	}
	line := fmt.Sprintf("Search: %s   Sort: %s   People: %d", search, a.sort.Label(), a.store.Len())
	return titleStyle.Render("Age Groups") + "\n" + headerStyle.Render(line)
}

func (a *App) columnWidth() int {
	// 4 columns, each with border (2) and padding (2)
	return max(18, a.width/len(directory.Buckets)-4)
}

func (a *App) renderBoard() string {
	cols := a.Columns()
	dragged, dragging := a.drag.Active()
	width := a.columnWidth()
	rendered := make([]string, len(cols))
	for b, col := range cols {
		target := directory.Buckets[b]
		heading := lipgloss.NewStyle().Bold(true).Foreground(bucketColors[b]).Render(target.Title())
		lines := []string{heading}
		for i, p := range col {
			if dragging && b == a.dropBucket && i == a.dropRow {
				lines = append(lines, dropStyle.Render("▶ drop here"))
			}
			style := cardStyle
			switch {
			case dragging && p.ID == dragged:
				style = draggedCard
			case !dragging && b == a.bucket && i == a.row:
				style = selectedCard
			}
			lines = append(lines, style.Width(width-4).Render(renderCard(p)))
		}
		if dragging && b == a.dropBucket && a.dropRow >= len(col) {
			lines = append(lines, dropStyle.Render("▶ drop here"))
		}
		if len(col) == 0 && !(dragging && b == a.dropBucket) {
			lines = append(lines, footerStyle.Render("(empty)"))
		}
		style := columnStyle
		switch {
		case dragging && b == a.dropBucket && a.drag.DragOver(target):
			style = targetStyle
		case !dragging && b == a.bucket:
			style = focusedStyle
		}
		rendered[b] = style.Width(width).Render(strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderCard(p directory.Person) string {
	rows := [][2]string{
		{"Name", p.Name},
		{"Age", strconv.Itoa(p.Age)},
		{"Email", p.Email},
		{"Phone", p.Phone},
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, labelStyle.Render(r[0]+": ")+valueStyle.Render(r[1]))
	}
	return strings.Join(out, "\n")
}

func (a *App) renderFooter() string {
	var lines []string
	derived := a.Derived()
	if hidden := directory.Hidden(derived); len(hidden) > 0 {
		lines = append(lines, hintStyle.Render(fmt.Sprintf("%d person(s) outside ages 1-100 are not shown", len(hidden))))
	}
	if a.search != "" && len(derived) == 0 {
		if name, ok := directory.Suggest(a.store.List(), a.search, a.opts.SuggestDistance); ok {
			lines = append(lines, hintStyle.Render(fmt.Sprintf("no matches, did you mean %q?", name)))
		}
	}
	scope := scopeBoard
	if a.Dragging() {
		scope = scopeDrag
	}
	lines = append(lines, footerStyle.Render(a.keys.HelpLine(scope)))
	if a.status != "" {
		if a.statusErr {
			lines = append(lines, errorStyle.Render(a.status))
		} else {
			lines = append(lines, statusStyle.Render(a.status))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalForm:
		out := titleStyle.Render(a.form.Title()) + "\n"
		errs := a.form.Errors()
		for i, field := range form.FieldOrder {
			marker := " "
			if i == a.fieldFocus {
				marker = "▶"
			}
			label := fmt.Sprintf("%s %-6s ", marker, fieldLabel(field))
			line := label + a.inputs[i].View()
			if msg, ok := errs[field]; ok {
				line += "  " + errorStyle.Render(msg)
			}
			out += line + "\n"
		}
		out += fmt.Sprintf("[enter] %s  [tab] Next field  [esc] Cancel", a.form.SubmitLabel())
		return modalStyle.Render(out)
	case modalSearch:
		out := titleStyle.Render("Search by name") + "\n" + a.searchInput.View() + "\n"
		out += "[enter] Search (empty clears)  [esc] Cancel"
		return modalStyle.Render(out)
	default:
		return ""
	}
}

func fieldLabel(field string) string {
	switch field {
	case directory.FieldName:
		return "Name"
	case directory.FieldAge:
		return "Age"
	case directory.FieldEmail:
		return "Email"
	case directory.FieldPhone:
		return "Phone"
	}
	return field
}
