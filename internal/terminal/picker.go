package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"

	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/ports/dialog"
	"wolfpack/internal/wire"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Save   key.Binding
	Cancel key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "add/remove")),
	Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// pickItem lleva su propio estado de selección; la vista se deriva de él.
type pickItem struct {
	wolf     wolves.Wolf
	selected bool
}

type pickerModel struct {
	title     string
	items     []pickItem
	cursor    int
	saved     bool
	cancelled bool
}

func newPickerModel(req dialog.PickRequest) pickerModel {
	items := make([]pickItem, 0, len(req.Candidates))
	for _, w := range req.Candidates {
		items = append(items, pickItem{wolf: w})
	}
	return pickerModel{title: req.Title, items: items}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, pickerKeys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(km, pickerKeys.Toggle):
		if len(m.items) > 0 {
			m.items[m.cursor].selected = !m.items[m.cursor].selected
		}
	case key.Matches(km, pickerKeys.Save):
		m.saved = true
		return m, tea.Quit
	case key.Matches(km, pickerKeys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

// chosen devuelve los lobos marcados en el orden de la lista; nil si se canceló.
func (m pickerModel) chosen() []wolves.Wolf {
	if !m.saved {
		return nil
	}
	out := make([]wolves.Wolf, 0, len(m.items))
	for _, it := range m.items {
		if it.selected {
			out = append(out, it.wolf)
		}
	}
	return out
}

func (m pickerModel) View() string {
	if m.saved || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(m.title))
	b.WriteString("\n\n")
	if len(m.items) == 0 {
		b.WriteString(styleMuted.Render("No wolves available."))
		b.WriteString("\n")
	}
	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = styleCursor.Render("> ")
		}
		mark := "[ ]"
		if it.selected {
			mark = styleSelected.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %-20s %-7s %s\n",
			cursor, mark, it.wolf.Name, it.wolf.Gender, wire.FormatDate(it.wolf.Birthday))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted.Render("space: add/remove   enter: save   esc: cancel"))
	return styleModal.Render(b.String()) + "\n"
}

// Picker es el diálogo de selección múltiple de lobos.
type Picker struct {
	In  io.Reader
	Out io.Writer
}

var _ dialog.WolfPicker = Picker{}

func (p Picker) PickWolves(ctx context.Context, req dialog.PickRequest) ([]wolves.Wolf, error) {
	if len(req.Candidates) == 0 {
		return nil, nil
	}
	final, err := tea.NewProgram(newPickerModel(req), programOptions(ctx, p.In, p.Out)...).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(pickerModel)
	if !ok {
		return nil, nil
	}
	return m.chosen(), nil
}
