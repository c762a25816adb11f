package mailer

import (
	"fmt"
	"net/http"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendgridMailer delivers through the SendGrid v3 API.
type SendgridMailer struct {
	key        string
	from       *sgmail.Email
	subjPrefix string
	log        *zap.Logger
}

// NewSendgrid builds a SendgridMailer. from is the sender shown on outgoing
// mail; subject lines are prefixed with the site name.
func NewSendgrid(apiKey string, from mail.Address, siteName string, logger *zap.Logger) *SendgridMailer {
	return &SendgridMailer{
		key:        apiKey,
		from:       sgmail.NewEmail(from.Name, from.Address),
		subjPrefix: "[" + siteName + "] ",
		log:        logger,
	}
}

func (m *SendgridMailer) Send(msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}

	p := sgmail.NewPersonalization()
	p.Subject = m.subjPrefix + msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/plain", msg.Text))
	if msg.HTML != "" {
		v3.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}

	req := sendgrid.GetRequest(m.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(v3)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		m.log.Warn("sendgrid rejected message",
			zap.Int("status", res.StatusCode),
			zap.String("body", res.Body))
		return fmt.Errorf("sendgrid returned status %d", res.StatusCode)
	}
	return nil
}
