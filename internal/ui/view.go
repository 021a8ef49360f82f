package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/glfs/glfs-client/internal/actions"
	"github.com/glfs/glfs-client/internal/format/size"
	"github.com/glfs/glfs-client/internal/format/table"
	"github.com/glfs/glfs-client/internal/state"
	uistate "github.com/glfs/glfs-client/internal/ui/state"
)

const tabSeparator = "  "

var catalogColumns = []table.Column{
	{Header: "Name"},
	{Header: "Size", Align: table.AlignRight},
	{Header: "Modified"},
}

var footerHints = map[string]string{
	uistate.TabHome:     "l launch  s loader status  i install loader  tab switch  q quit",
	uistate.TabShaders:  "↑/↓ move  enter apply  ctrl+o import  ctrl+r refresh  esc clear/quit",
	uistate.TabSettings: "↑/↓ field  ctrl+b browse  ctrl+t theme  ctrl+s save  ctrl+r reload",
}

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 24)
	if m.booted {
		lines = append(lines, styledLine{text: m.tabBar(), raw: true}, styledLine{})
		switch m.tabs.Active() {
		case uistate.TabShaders:
			lines = append(lines, m.shaderLines()...)
		case uistate.TabSettings:
			lines = append(lines, m.settingsLines()...)
		default:
			lines = append(lines, m.homeLines()...)
		}
	}
	bottom := m.bottomLines()
	lines = limitHeight(lines, m.height-len(bottom), m.width)
	lines = append(lines, bottom...)
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) tabBar() string {
	segments := make([]string, len(uistate.TabNames))
	for i, name := range uistate.TabNames {
		label := fmt.Sprintf(" %s ", strings.ToUpper(name[:1])+name[1:])
		style := m.styles.Tab
		if m.tabs.IsActive(name) {
			style = m.styles.ActiveTab
		}
		if style != nil {
			label = style.Render(label)
		}
		segments[i] = label
	}
	return strings.Join(segments, tabSeparator)
}

func (m *Model) homeLines() []styledLine {
	record, _ := m.configs.Record()
	lines := []styledLine{
		{text: "Minecraft: " + orUnset(record.MinecraftPath), style: m.styles.Item},
		{text: "Shaders:   " + orUnset(record.ShadersPath), style: m.styles.Item},
		{},
	}
	if !m.loader.Known() {
		return append(lines, styledLine{text: "MaterialBinLoader: unknown (press s to check)", style: m.styles.Info})
	}
	return append(lines, styledLine{
		text:  "MaterialBinLoader: " + m.loader.Message,
		style: m.severityStyle(m.loader.Severity()),
	})
}

func (m *Model) shaderLines() []styledLine {
	lines := []styledLine{{text: m.filterPrompt(), raw: true}}
	l := m.list
	if len(l.Rows) == 0 {
		msg := "(no shaders)"
		if l.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", l.Filter)
		}
		return append(lines, styledLine{text: msg, style: m.styles.Info})
	}
	m.syncViewport()
	rows := l.Visible(m.maxVisibleRows())
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{row.Shader.Name, size.Format(row.Shader.Size), row.Shader.Modified}
	}
	header, formatted := table.Format(catalogColumns, cells)
	lines = append(lines, styledLine{text: "  " + header, style: m.styles.Header})
	start := 0
	if len(rows) < len(l.Rows) {
		start = l.ViewportOffset
	}
	for i, text := range formatted {
		lines = append(lines, m.buildRowLine(text, start+i == l.Cursor))
	}
	return lines
}

// buildRowLine pads the row to the full width so the selected row's
// background spans the container.
func (m *Model) buildRowLine(text string, selected bool) styledLine {
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	if selected {
		lineStyle = m.styles.SelectedItem
		indicatorStyle = m.styles.SelectedItemIndicator
	}
	full := "▌ " + text
	if m.width > 0 {
		if pad := m.width - len([]rune(full)); pad > 0 {
			full += strings.Repeat(" ", pad)
		}
	}
	return styledLine{text: full, style: lineStyle, prefixStyle: indicatorStyle, highlightFrom: 1}
}

func (m *Model) settingsLines() []styledLine {
	lines := make([]styledLine, 0, len(actions.Fields)*2+2)
	focused := m.form.focusedField()
	for _, field := range actions.Fields {
		label := fieldLabels[field]
		style := m.styles.Label
		if field == focused {
			label = "▌ " + label
			style = m.styles.SelectedItemIndicator
		} else {
			label = "  " + label
		}
		lines = append(lines,
			styledLine{text: label, style: style},
			styledLine{text: "  " + m.form.inputView(field), raw: true},
		)
	}
	mode := "Light mode"
	if m.form.dark {
		mode = "Dark mode"
	}
	return append(lines, styledLine{}, styledLine{text: "  Theme: " + mode, style: m.styles.Label})
}

// bottomLines holds the loading indicator, the status line and the footer.
func (m *Model) bottomLines() []styledLine {
	var lines []styledLine
	if labels := m.pendingLabels(); len(labels) > 0 {
		lines = append(lines, styledLine{text: "Working: " + strings.Join(labels, ", ") + "…", style: m.styles.Loading})
	}
	if m.status.Message != "" {
		lines = append(lines, styledLine{text: m.status.Message, style: m.severityStyle(m.status.Severity)})
	}
	if m.halted {
		lines = append(lines, styledLine{text: "press q to quit", style: m.styles.Footer})
	}
	if m.showFooter && m.booted {
		lines = append(lines, styledLine{}, styledLine{text: footerHints[m.tabs.Active()], style: m.styles.Footer})
	}
	return lines
}

func (m *Model) severityStyle(severity state.Severity) *lipgloss.Style {
	switch severity {
	case state.SeverityError:
		return m.styles.Error
	case state.SeveritySuccess:
		return m.styles.Success
	default:
		return m.styles.Info
	}
}

func orUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// maxVisibleRows is the number of catalog rows that fit below the tab bar,
// filter prompt and table header.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 + len(m.bottomLines())
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width-1), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
