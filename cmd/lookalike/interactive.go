package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lookalike-codec/lookalike/codec"
	"github.com/lookalike-codec/lookalike/trace"
	"github.com/lookalike-codec/lookalike/validate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	cipherStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	stageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type opMode int

const (
	modeEncode opMode = iota
	modeDecode
)

func (m opMode) String() string {
	if m == modeEncode {
		return "encode"
	}
	return "decode"
}

type viewState int

const (
	stateInput viewState = iota
	stateResult
)

type interactiveModel struct {
	c        *codec.Codec
	input    textinput.Model
	mode     opMode
	state    viewState
	result   string
	resErr   error
	stages   []trace.Stage
	stageIdx int
	quality  validate.Quality
	copied   bool
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "text to encode"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &interactiveModel{
		c:     codec.New(),
		input: ti,
		mode:  modeEncode,
		state: stateInput,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab":
			if m.state == stateInput {
				if m.mode == modeEncode {
					m.mode = modeDecode
					m.input.Placeholder = "ciphertext to decode"
				} else {
					m.mode = modeEncode
					m.input.Placeholder = "text to encode"
				}
				return m, nil
			}

		case "enter":
			if m.state == stateInput {
				m.run()
				m.state = stateResult
				return m, nil
			}

		case "left", "h":
			if m.state == stateResult && m.stageIdx > 0 {
				m.stageIdx--
				return m, nil
			}

		case "right", "l", " ":
			if m.state == stateResult && m.stageIdx < len(m.stages)-1 {
				m.stageIdx++
				return m, nil
			}

		case "c":
			if m.state == stateResult && m.resErr == nil {
				// Best effort; headless environments have no clipboard.
				if err := clipboard.WriteAll(m.result); err == nil {
					m.copied = true
				}
				return m, nil
			}

		case "esc":
			if m.state == stateResult {
				m.state = stateInput
				m.result = ""
				m.resErr = nil
				m.stages = nil
				m.stageIdx = 0
				m.copied = false
				m.input.Focus()
				return m, nil
			}

		case "q":
			if m.state != stateInput {
				return m, tea.Quit
			}
		}
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) run() {
	in := m.input.Value()
	m.stageIdx = 0
	m.copied = false

	if m.mode == modeEncode {
		m.result, m.resErr = m.c.Encode(in)
		m.stages = trace.Encoding(m.c, in)
		m.quality = validate.Assess(m.result)
		return
	}

	res, err := m.c.Decode(in)
	m.result, m.resErr = res.Plaintext, err
	m.stages = trace.Decoding(m.c, in)
	m.quality = validate.Assess(in)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("lookalike"))
	b.WriteString(" ")
	b.WriteString(modeStyle.Render(m.mode.String()))
	b.WriteString("\n\n")

	switch m.state {
	case stateInput:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab switch mode • enter run • ctrl+c quit"))

	case stateResult:
		if m.resErr != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.resErr)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
			if m.copied {
				b.WriteString(helpStyle.Render("  (copied)"))
			}
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(fmt.Sprintf("quality %d/100", m.quality.Score)))
		}
		b.WriteString("\n\n")
		b.WriteString(m.viewStage())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("←/→ step stages • c copy • esc back • q quit"))
	}

	return b.String()
}

// viewStage renders the currently selected trace stage, one at a time,
// the way the original step-by-step animation walks the transform.
func (m *interactiveModel) viewStage() string {
	if len(m.stages) == 0 {
		return ""
	}
	st := m.stages[m.stageIdx]

	var b strings.Builder
	b.WriteString(stageStyle.Render(fmt.Sprintf(" step %d/%d ", m.stageIdx+1, len(m.stages))))
	b.WriteString(" ")
	b.WriteString(st.Title)
	b.WriteString("\n")
	b.WriteString(st.Description)
	b.WriteString("\n")
	if st.Input != "" {
		b.WriteString("in:  " + cipherStyle.Render(clip(st.Input, 70)) + "\n")
	}
	if st.Output != "" {
		b.WriteString("out: " + cipherStyle.Render(clip(st.Output, 70)) + "\n")
	}
	if st.Technical != "" {
		b.WriteString(helpStyle.Render(st.Technical) + "\n")
	}
	return b.String()
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
