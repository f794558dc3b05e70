package terminal

import (
	"fmt"
	"io"
	"sync"

	"wolfpack/internal/ports/notify"

	"github.com/charmbracelet/lipgloss"
)

// Notifier imprime cada mensaje en una línea con color según el nivel.
// En la terminal la duración no aplica: la línea queda en el scrollback.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

var _ notify.Notifier = (*Notifier)(nil)

func (n *Notifier) Notify(m notify.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, _ = fmt.Fprintln(n.out, levelStyle(m.Level).Render(m.Text))
}

func levelStyle(l notify.Level) lipgloss.Style {
	switch l {
	case notify.LevelSuccess:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case notify.LevelError:
		return lipgloss.NewStyle().Foreground(colorError).Bold(true)
	default:
		return lipgloss.NewStyle()
	}
}
