package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/raydium-io/raydium-amm/amm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	result   string
	records  []amm.Record
	input    textinput.Model
	selected int
	encoding string
	state    modelState
}

type modelState int

const (
	stateSelectRecord modelState = iota
	stateInputData
	stateShowResult
)

type decodedMsg struct {
	err    error
	result string
}

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{
		records:  amm.Records(),
		encoding: "base64",
		state:    stateSelectRecord,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputData {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectRecord && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectRecord && m.selected < len(m.records)-1 {
				m.selected++
			}

		case "tab":
			if m.state == stateInputData {
				if m.encoding == "base64" {
					m.encoding = "hex"
				} else {
					m.encoding = "base64"
				}
				m.input.Placeholder = m.encoding
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelectRecord:
				m.prepareInput()
				m.state = stateInputData
				return m, textinput.Blink

			case stateInputData:
				return m, m.decode

			case stateShowResult:
				m.state = stateSelectRecord
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputData:
				m.state = stateSelectRecord
			case stateShowResult:
				m.state = stateSelectRecord
				m.result = ""
				m.err = nil
			}
		}

	case decodedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputData {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = m.encoding
	ti.Prompt = "data: "
	ti.Width = 60
	ti.CharLimit = 8192
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) decode() tea.Msg {
	r := m.records[m.selected]
	data, err := parseBytes(strings.TrimSpace(m.input.Value()), m.encoding)
	if err != nil {
		return decodedMsg{err: err}
	}
	v, err := amm.DecodeValue(r.Name, data)
	if err != nil {
		return decodedMsg{err: err}
	}
	var b bytes.Buffer
	if err := printText(&b, r.Name, v); err != nil {
		return decodedMsg{err: err}
	}
	return decodedMsg{result: b.String()}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Raydium AMM Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectRecord:
		b.WriteString("Select a record to decode:\n\n")
		for i, r := range m.records {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + formatRecord(r)))
			} else {
				b.WriteString("  " + formatRecord(r))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter decode • q quit"))

	case stateInputData:
		r := m.records[m.selected]
		b.WriteString(fmt.Sprintf("Decoding %s\n\n", nameStyle.Render(r.Name)))
		b.WriteString(m.input.View())
		b.WriteString(" ")
		b.WriteString(typeStyle.Render(m.encoding))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab switch encoding • enter decode • esc back"))

	case stateShowResult:
		r := m.records[m.selected]
		b.WriteString(fmt.Sprintf("%s:\n\n", nameStyle.Render(r.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func formatRecord(r amm.Record) string {
	size := "variable"
	if r.Fixed() {
		size = fmt.Sprintf("%d bytes", r.Size())
	}
	return nameStyle.Render(r.Name) + " " + typeStyle.Render(r.Kind.String()+", "+size)
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
