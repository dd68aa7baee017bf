package mailingservices

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/techagentng/citizenrate/config"
)

// Mailer sends transactional mail.
type Mailer interface {
	SendWelcomeMessage(ctx context.Context, name, email string) error
}

type Mailgun struct {
	Client *mailgun.MailgunImpl
	From   string
}

// Init builds the client. Without a domain and key the mailer stays disabled.
func (m *Mailgun) Init(conf *config.Config) {
	if conf.MgDomain == "" || conf.MailgunApiKey == "" {
		log.Println("mailgun not configured; outgoing mail is disabled")
		return
	}
	m.Client = mailgun.NewMailgun(conf.MgDomain, conf.MailgunApiKey)
	m.From = conf.MgEmailFrom
}

func (m *Mailgun) SendWelcomeMessage(ctx context.Context, name, email string) error {
	if m == nil || m.Client == nil {
		return nil
	}
	subject := "Welcome to CitizenRate"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. You can now rate institutions and officials and join the discussion.\n", name)
	message := m.Client.NewMessage(m.From, subject, body, email)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, id, err := m.Client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}
	log.Printf("welcome mail queued for %s: %s", email, id)
	return nil
}
