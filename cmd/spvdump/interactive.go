package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/spirv-graph/spirv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const listHeight = 20

type modelState int

const (
	stateBrowse modelState = iota
	stateJump
)

type interactiveModel struct {
	err      error
	module   *spirv.Module
	filename string
	status   string
	entities []spirv.Entity
	jump     textinput.Model
	selected int
	offset   int
	state    modelState
}

type loadedMsg struct {
	err    error
	module *spirv.Module
}

func newInteractiveModel(filename string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "id"
	ti.Prompt = "jump to %"
	ti.Width = 12
	return &interactiveModel{
		filename: filename,
		jump:     ti,
		state:    stateBrowse,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadModule
}

func (m *interactiveModel) loadModule() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	mod, err := spirv.ParseModule(data)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{module: mod}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateJump {
			return m.updateJump(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-listHeight)
		case "pgdown":
			m.move(listHeight)
		case "home":
			m.move(-len(m.entities))
		case "end":
			m.move(len(m.entities))
		case "/", "g":
			m.state = stateJump
			m.status = ""
			m.jump.SetValue("")
			return m, m.jump.Focus()
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.module = msg.module
		for e := range msg.module.Entities() {
			m.entities = append(m.entities, e)
		}
	}

	return m, nil
}

func (m *interactiveModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateBrowse
		m.jump.Blur()
		return m, nil
	case "enter":
		m.state = stateBrowse
		m.jump.Blur()
		m.jumpTo(strings.TrimPrefix(strings.TrimSpace(m.jump.Value()), "%"))
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m *interactiveModel) jumpTo(value string) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		m.status = fmt.Sprintf("not an id: %q", value)
		return
	}
	want, err := m.module.Lookup(spirv.Id(n))
	if err != nil {
		m.status = err.Error()
		return
	}
	for i, e := range m.entities {
		if e == want {
			m.move(i - m.selected)
			return
		}
	}
	m.status = fmt.Sprintf("%%%d is an unresolved forward reference", n)
}

func (m *interactiveModel) move(delta int) {
	if len(m.entities) == 0 {
		return
	}
	m.selected = max(0, min(len(m.entities)-1, m.selected+delta))
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+listHeight {
		m.offset = m.selected - listHeight + 1
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.module == nil {
		return "Loading module..."
	}

	var b strings.Builder
	h := m.module.Header()
	b.WriteString(titleStyle.Render("SPIR-V Browser"))
	b.WriteString(fmt.Sprintf(" %s  v%s  bound %d  %d entities\n\n",
		m.filename, h.VersionString(), h.Bound, len(m.entities)))

	list := m.renderList()
	detail := ""
	if len(m.entities) > 0 {
		detail = detailStyle.Render(m.renderDetail(m.entities[m.selected]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	b.WriteString("\n\n")

	if m.state == stateJump {
		b.WriteString(m.jump.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter jump • esc cancel"))
	} else {
		if m.status != "" {
			b.WriteString(errorStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ select • pgup/pgdown page • / jump to id • q quit"))
	}
	return b.String()
}

func (m *interactiveModel) renderList() string {
	var b strings.Builder
	end := min(len(m.entities), m.offset+listHeight)
	for i := m.offset; i < end; i++ {
		e := m.entities[i]
		id := "     "
		if e.HasID() {
			id = fmt.Sprintf("%5s", e.ID())
		}
		line := fmt.Sprintf("%s %-24s", id, e.Op())
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + idStyle.Render(id) + " " + opStyle.Render(fmt.Sprintf("%-24s", e.Op())))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *interactiveModel) renderDetail(e spirv.Entity) string {
	var b strings.Builder
	b.WriteString(opStyle.Render(e.Op().String()))
	if e.HasID() {
		b.WriteString(" ")
		b.WriteString(idStyle.Render(e.ID().String()))
	}
	b.WriteString("\n")
	if name := e.Name(); name != "" {
		b.WriteString(fmt.Sprintf("name: %s\n", name))
	}
	if l := e.Line(); l != nil {
		b.WriteString(fmt.Sprintf("line: %s\n", lineString(l)))
	}
	if ops := describe(e); ops != "" {
		b.WriteString(fmt.Sprintf("operands: %s\n", ops))
	}
	if rt, err := m.module.ResultType(e.ID()); err == nil && e.HasID() {
		b.WriteString(fmt.Sprintf("type: %s %s\n", rt, m.module.Name(rt)))
	}
	for _, d := range decorationList(e) {
		b.WriteString(fmt.Sprintf("decoration: %s\n", d))
	}
	if fn, ok := e.(*spirv.Function); ok {
		b.WriteString(fmt.Sprintf("params: %d  blocks: %d  body: %d\n",
			len(fn.Parameters), len(fn.Blocks), len(fn.Body)))
		for _, em := range fn.ExecutionModes() {
			b.WriteString(fmt.Sprintf("execution mode: %d %v\n", uint32(em.Mode), em.Literals))
		}
	}
	words, err := spirv.EncodeEntity(e)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		return b.String()
	}
	hex := make([]string, len(words))
	for i, w := range words {
		hex[i] = fmt.Sprintf("%08x", w)
	}
	b.WriteString("words: " + strings.Join(hex, " "))
	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
