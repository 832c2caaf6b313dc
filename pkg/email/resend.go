package email

import (
	"fmt"
	"os"

	"github.com/resendlabs/resend-go"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
}

func NewEmailService() *EmailService {
	return &EmailService{
		client:   resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:     os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName: os.Getenv("EMAIL_FROM_NAME"),
	}
}

// SendWelcomeEmail greets a newly registered user. Callers fire this in a
// goroutine; a failed send must not fail the registration.
func (s *EmailService) SendWelcomeEmail(to, displayName string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: "Welcome to Social Development Events",
		Html: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your account is ready. Browse upcoming events and join the ones you care about.</p>",
			displayName,
		),
	}

	_, err := s.client.Emails.Send(params)
	return err
}
