package notifier

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/gomail.v2"

	"meetapp/internal/config"
)

// Mail is the message contract the queue worker hands to a Mailer.
type Mail struct {
	To       string
	Subject  string
	Template string
	Context  map[string]string
}

type Mailer interface {
	Send(mail Mail) error
}

// SMTPMailer delivers mail over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.SMTP) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(mail Mail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", renderBody(mail.Template, mail.Context))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}

// renderBody produces a plain-text body from the template name and context
// fields. Keys are sorted so the output is stable.
func renderBody(template string, context map[string]string) string {
	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(template)
	b.WriteString("\n\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, context[k])
	}

	return b.String()
}

// SubscriptionMail composes the organizer notification for a new subscriber.
func SubscriptionMail(job SubscriptionJob) Mail {
	return Mail{
		To:       fmt.Sprintf("%s <%s>", job.OrganizerName, job.OrganizerEmail),
		Subject:  fmt.Sprintf("New subscriber for %s", job.MeetupTitle),
		Template: "subscription",
		Context: map[string]string{
			"organizer":  job.OrganizerName,
			"subscriber": job.SubscriberName,
			"email":      job.SubscriberEmail,
			"meetup":     job.MeetupTitle,
		},
	}
}
