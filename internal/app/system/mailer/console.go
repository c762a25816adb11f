package mailer

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ConsoleMailer logs messages instead of delivering them. It is the default
// when no SendGrid key is configured, and doubles as a capture sink in tests.
type ConsoleMailer struct {
	log *zap.Logger

	mu   sync.Mutex
	sent []Message
}

func NewConsole(logger *zap.Logger) *ConsoleMailer {
	return &ConsoleMailer{log: logger}
}

func (m *ConsoleMailer) Send(msg Message) error {
	recipients := make([]string, 0, len(msg.To))
	for _, to := range msg.To {
		recipients = append(recipients, to.String())
	}

	m.log.Info("mail (console delivery)",
		zap.String("to", strings.Join(recipients, ", ")),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Text))

	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	return nil
}

// Sent returns a copy of every message delivered so far.
func (m *ConsoleMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
