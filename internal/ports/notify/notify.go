package notify

import (
	"sync"
	"time"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message es una notificación transitoria (snackbar).
type Message struct {
	Level    Level
	Text     string
	Duration time.Duration
}

type Notifier interface {
	Notify(m Message)
}

// Recorder guarda los mensajes en memoria (tests y modo batch).
type Recorder struct {
	mu   sync.Mutex
	msgs []Message
}

func (r *Recorder) Notify(m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, m)
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.msgs...)
}

// Texts devuelve solo los textos, en orden.
func (r *Recorder) Texts() []string {
	msgs := r.Messages()
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}
