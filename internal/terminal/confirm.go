package terminal

import (
	"context"
	"io"
	"strings"

	"wolfpack/internal/ports/dialog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
}

var confirmKeys = confirmKeyMap{
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "N", "esc", "q", "ctrl+c"), key.WithHelp("n/esc", "no")),
	Toggle: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "focus")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
}

// confirmModel es un sí/no. El foco arranca en "No" para que enter no borre por accidente.
type confirmModel struct {
	prompt   dialog.Prompt
	focusYes bool
	answer   bool
	done     bool
}

func newConfirmModel(p dialog.Prompt) confirmModel {
	return confirmModel{prompt: p}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, confirmKeys.Yes):
		m.answer, m.done = true, true
		return m, tea.Quit
	case key.Matches(km, confirmKeys.No):
		m.answer, m.done = false, true
		return m, tea.Quit
	case key.Matches(km, confirmKeys.Toggle):
		m.focusYes = !m.focusYes
	case key.Matches(km, confirmKeys.Submit):
		m.answer, m.done = m.focusYes, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	yes := styleButton.Render("Yes")
	no := styleButton.Render("No")
	if m.focusYes {
		yes = styleButtonActive.Render("Yes")
	} else {
		no = styleButtonActive.Render("No")
	}

	var b strings.Builder
	if m.prompt.Title != "" {
		b.WriteString(styleTitle.Render(m.prompt.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.prompt.Text)
	b.WriteString("\n\n")
	b.WriteString(yes + " " + no)
	b.WriteString("\n\n")
	b.WriteString(styleMuted.Render("y: yes   n/esc: no   tab: focus   enter: select"))
	return styleModal.Render(b.String()) + "\n"
}

// Confirmer muestra el prompt en la terminal y espera la respuesta.
type Confirmer struct {
	In  io.Reader
	Out io.Writer
}

var _ dialog.Confirmer = Confirmer{}

func (c Confirmer) Confirm(ctx context.Context, p dialog.Prompt) (bool, error) {
	final, err := tea.NewProgram(newConfirmModel(p), programOptions(ctx, c.In, c.Out)...).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	return ok && m.answer, nil
}

func programOptions(ctx context.Context, in io.Reader, out io.Writer) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	return opts
}
