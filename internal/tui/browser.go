// Package tui is an interactive terminal browser for equilibrium
// ionization curves.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/ioneq/internal/config"
	"github.com/san-kum/ioneq/internal/ioneq"
	"github.com/san-kum/ioneq/internal/viz"
)

const (
	stateInput = iota
	stateView
)

type model struct {
	state int
	input string
	err   error

	cfg     *config.Config
	element *ioneq.Element
	frac    *ioneq.FractionTable
	stage   int

	width, height int
}

func newModel(cfg *config.Config) model {
	return model{
		state: stateInput,
		input: cfg.Element,
		cfg:   cfg,
		width: 80, height: 24,
	}
}

// Run starts the browser with the given run configuration.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateInput:
		return m.inputKey(msg)
	case stateView:
		return m.viewKey(msg)
	}
	return m, nil
}

func (m model) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.err = m.compute()
		if m.err == nil {
			m.state = stateView
			m.stage = 0
		}
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if len(msg.String()) == 1 {
			m.input += msg.String()
		}
	}
	return m, nil
}

func (m model) viewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateInput
	case "left", "h":
		if m.stage > 0 {
			m.stage--
		}
	case "right", "l":
		if m.stage < m.element.Len()-1 {
			m.stage++
		}
	case "home", "g":
		m.stage = 0
	case "end", "G":
		m.stage = m.element.Len() - 1
	}
	return m, nil
}

func (m *model) compute() error {
	grid, err := m.cfg.Grid()
	if err != nil {
		return err
	}
	el, err := ioneq.New(strings.TrimSpace(m.input), grid, m.cfg.Provider)
	if err != nil {
		return err
	}
	frac, err := el.EquilibriumIonization()
	if err != nil {
		return err
	}
	m.element, m.frac = el, frac
	return nil
}

func (m model) View() string {
	switch m.state {
	case stateView:
		return m.viewScreen()
	default:
		return m.inputScreen()
	}
}

func (m model) inputScreen() string {
	var b strings.Builder
	b.WriteString(viz.Title.Render("ioneq — equilibrium ionization browser") + "\n\n")
	b.WriteString(viz.Label.Render("element: ") + viz.Value.Render(m.input+"▌") + "\n\n")
	if m.err != nil {
		b.WriteString(viz.ErrorText.Render(m.err.Error()) + "\n\n")
	}
	b.WriteString(viz.KeyHint.Render("enter compute · esc quit"))
	return b.String()
}

func (m model) viewScreen() string {
	ion, err := m.element.Ion(m.stage)
	if err != nil {
		return viz.ErrorText.Render(err.Error())
	}

	header := fmt.Sprintf("%s (Z=%d) · stage %d/%d",
		m.element.Symbol(), m.element.AtomicNumber(), m.stage+1, m.element.Len())

	chartW := m.width - 12
	if chartW < 20 {
		chartW = 20
	}
	chartH := m.height - 10
	if chartH < 5 {
		chartH = 5
	}
	chart, err := viz.StageChart(ion.Name(), m.frac, m.stage, chartW, chartH)
	if err != nil {
		return viz.ErrorText.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(viz.Title.Render(header) + "\n")
	b.WriteString(viz.Panel.Render(chart) + "\n")
	b.WriteString(viz.KeyHint.Render("←/→ stage · g/G first/last · esc element · q quit"))
	return b.String()
}
