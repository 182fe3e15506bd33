package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gambit/agent"
	"gambit/game"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

type agentMoveMsg struct {
	move game.Move
}

type agentErrMsg struct {
	err error
}

// matchModel drives a match where at least one seat is played from the
// keyboard. Humans pick a move by its number in the legal-move list.
type matchModel struct {
	state    game.State
	agents   []agent.Agent // nil entries are human seats
	buffer   string
	inputErr string
	err      error
}

func runInteractive(state game.State, agents []agent.Agent) error {
	final, err := tea.NewProgram(matchModel{state: state, agents: agents}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(matchModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

func (m matchModel) Init() tea.Cmd {
	return m.agentTurn()
}

// agentTurn kicks off the active agent's search off the UI loop, or does
// nothing when the game is over or a human is to move.
func (m matchModel) agentTurn() tea.Cmd {
	if m.state.IsTerminal() {
		return nil
	}
	a := m.agents[m.state.Player()]
	if a == nil {
		return nil
	}
	state := m.state
	return func() tea.Msg {
		move, err := a.ChooseMove(state)
		if err != nil {
			return agentErrMsg{err: err}
		}
		return agentMoveMsg{move: move}
	}
}

func (m matchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case agentMoveMsg:
		return m.apply(msg.move)
	case agentErrMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m matchModel) humanTurn() bool {
	return !m.state.IsTerminal() && m.agents[m.state.Player()] == nil
}

func (m matchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter":
		if !m.humanTurn() || m.buffer == "" {
			return m, nil
		}
		moves := m.state.LegalMoves()
		index, err := strconv.Atoi(m.buffer)
		if err != nil || index < 0 || index >= len(moves) {
			m.inputErr = fmt.Sprintf("no move #%s", m.buffer)
			m.buffer = ""
			return m, nil
		}
		m.buffer = ""
		m.inputErr = ""
		return m.apply(moves[index])
	case "backspace":
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
		return m, nil
	default:
		if m.humanTurn() && len(key) == 1 && key >= "0" && key <= "9" {
			m.buffer += key
		}
		return m, nil
	}
}

func (m matchModel) apply(move game.Move) (tea.Model, tea.Cmd) {
	next, err := m.state.Play(move)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.state = next
	return m, m.agentTurn()
}

func (m matchModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gambit") + "\n")
	b.WriteString(boardStyle.Render(m.state.String()) + "\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	case m.state.IsTerminal():
		b.WriteString(resultStyle.Render(resultLine(m.state.Utilities())) + "\n")
		b.WriteString(faintStyle.Render("press q to quit") + "\n")
	case m.humanTurn():
		fmt.Fprintf(&b, "Player %d to move:\n", m.state.Player())
		for i, move := range m.state.LegalMoves() {
			fmt.Fprintf(&b, "  %2d. %s\n", i, move)
		}
		if m.inputErr != "" {
			b.WriteString(errorStyle.Render(m.inputErr) + "\n")
		}
		fmt.Fprintf(&b, "move # > %s\n", m.buffer)
	default:
		fmt.Fprintf(&b, "Player %d is thinking...\n", m.state.Player())
	}
	return b.String()
}

// resultLine assumes the supplied games' payoffs: a positive coordinate marks
// the winner, none means a draw.
func resultLine(utilities []float64) string {
	for i, u := range utilities {
		if u > 0 {
			return fmt.Sprintf("Player %d wins.", i)
		}
	}
	return "Draw."
}
