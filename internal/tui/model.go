// Package tui is the interactive terminal form for quicksplit.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/quicksplit/internal/form"
	"github.com/mmynk/quicksplit/internal/format"
	"github.com/mmynk/quicksplit/internal/models"
)

// Exporter writes a result image. *export.Exporter satisfies it.
type Exporter interface {
	Export(ctx context.Context, alloc models.Allocation) (string, error)
}

type exportDoneMsg struct {
	path string
	err  error
}

type row struct {
	name  textinput.Model
	value textinput.Model
}

// Model is the bubbletea model for the split form.
type Model struct {
	form      *form.Form
	exporter  Exporter
	formatter *format.Formatter
	keys      keyMap

	total textinput.Model
	count textinput.Model
	rows  []row
	focus int

	status    string
	statusErr bool
}

// New creates the form model. exporter may be nil to disable export.
func New(f *form.Form, exporter Exporter, formatter *format.Formatter) Model {
	m := Model{
		form:      f,
		exporter:  exporter,
		formatter: formatter,
		keys:      newKeyMap(),
		total:     newInput("Amount: ", "Enter total amount"),
		count:     newInput("Number of People: ", "Enter number of people"),
	}
	m.total.Focus()
	m.rebuildRows()
	return m
}

func newInput(prompt, placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = 32
	return in
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// rebuildRows recreates one input row per participant in the form.
func (m *Model) rebuildRows() {
	mode := m.form.Mode()
	n := m.form.Count()
	m.rows = make([]row, n)
	for i := range m.rows {
		r := row{name: newInput("", fmt.Sprintf("Person %d name", i+1))}
		switch mode {
		case models.ModeShares:
			r.value = newInput("Share: ", "1")
			r.value.SetValue("1")
			r.value.CursorEnd()
		case models.ModeAmounts:
			r.value = newInput("Amount: ", "0")
			r.value.SetValue("0")
			r.value.CursorEnd()
		}
		m.rows[i] = r
	}
	if last := len(m.fields()) - 1; m.focus > last {
		m.focus = last
	}
	m.applyFocus()
}

// fields returns every input in focus order.
func (m *Model) fields() []*textinput.Model {
	fields := []*textinput.Model{&m.total, &m.count}
	withValue := m.form.Mode() != models.ModeEqual
	for i := range m.rows {
		fields = append(fields, &m.rows[i].name)
		if withValue {
			fields = append(fields, &m.rows[i].value)
		}
	}
	return fields
}

func (m *Model) applyFocus() {
	for i, f := range m.fields() {
		if i == m.focus {
			f.Focus()
		} else {
			f.Blur()
		}
	}
}

func (m *Model) moveFocus(dir int) {
	n := len(m.fields())
	m.focus = (m.focus + dir + n) % n
	m.applyFocus()
}

func (m *Model) switchMode(dir int) {
	modes := models.Modes
	cur := m.form.Mode()
	idx := 0
	for i, mode := range modes {
		if mode == cur {
			idx = i
		}
	}
	m.form.SetMode(modes[(idx+dir+len(modes))%len(modes)])
	m.rebuildRows()
	m.status = ""
}

// sync pushes the focused input's text into the form.
func (m *Model) sync() {
	switch m.focus {
	case 0:
		m.form.SetTotal(m.total.Value())
		return
	case 1:
		if m.form.SetCount(m.count.Value()) {
			m.rebuildRows()
		}
		return
	}

	idx := m.focus - 2
	perRow := 1
	if m.form.Mode() != models.ModeEqual {
		perRow = 2
	}
	i, isValue := idx/perRow, idx%perRow == 1
	if i >= len(m.rows) {
		return
	}
	if !isValue {
		m.form.SetName(i, m.rows[i].name.Value())
		return
	}
	switch m.form.Mode() {
	case models.ModeShares:
		m.form.SetWeight(i, m.rows[i].value.Value())
	case models.ModeAmounts:
		m.form.SetAmount(i, m.rows[i].value.Value())
	}
}

func (m *Model) split() {
	_, err := m.form.Split(context.Background())
	switch {
	case err == nil:
		m.status, m.statusErr = "", false
	case errors.Is(err, form.ErrIncomplete):
		m.status, m.statusErr = "Enter a total, the number of people and every name.", true
	default:
		m.status, m.statusErr = err.Error(), true
	}
}

func (m Model) exportCmd() tea.Cmd {
	alloc, ok := m.form.Result()
	if !ok || m.exporter == nil {
		return nil
	}
	exporter := m.exporter
	return func() tea.Msg {
		path, err := exporter.Export(context.Background(), alloc)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			m.status, m.statusErr = "Export failed: "+msg.err.Error(), true
		} else {
			m.status, m.statusErr = "Saved "+msg.path, false
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, m.keys.Split):
			m.split()
			return m, nil
		case key.Matches(msg, m.keys.Export):
			cmd := m.exportCmd()
			if cmd != nil {
				m.status, m.statusErr = "Exporting...", false
			}
			return m, cmd
		}
	}

	fields := m.fields()
	var cmd tea.Cmd
	*fields[m.focus], cmd = fields[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.sync()
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Split expenses with ease."))
	b.WriteString("\n")

	tabs := make([]string, len(models.Modes))
	for i, mode := range models.Modes {
		style := inactiveTabStyle
		if mode == m.form.Mode() {
			style = activeTabStyle
		}
		tabs[i] = style.Render(mode.Label())
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		m.total.View(),
		m.count.View(),
	}
	for i, r := range m.rows {
		line := labelStyle.Render(fmt.Sprintf("%2d. ", i+1)) + r.name.View()
		if m.form.Mode() != models.ModeEqual {
			line += "  " + r.value.View()
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", buttonStyle.Render("Split"))
	b.WriteString(formStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = statusErr
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if alloc, ok := m.form.Result(); ok {
		b.WriteString(m.renderResult(alloc))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderResult(alloc models.Allocation) string {
	width := 0
	for _, s := range alloc.Shares {
		if w := lipgloss.Width(s.Name); w > width {
			width = w
		}
	}
	lines := []string{headerStyle.UnsetMarginBottom().Render("Split Result")}
	for _, s := range alloc.Shares {
		name := s.Name + strings.Repeat(" ", width-lipgloss.Width(s.Name))
		lines = append(lines, name+"   "+m.formatter.Amount(s.Amount))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
