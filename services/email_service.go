// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"programlaz-api/config"
	"programlaz-api/models"
)

// mailDialer matches *gomail.Dialer so broadcasts can be tested without an
// SMTP server
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailService struct {
	config *config.Config
	dialer mailDialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendNewsletter delivers the newsletter to each recipient sequentially.
// One recipient's failure is counted and the iteration continues; the
// aggregate result reports sent/failed counts and Success is true only when
// every send went through.
func (es *EmailService) SendNewsletter(subject, htmlContent, textContent string, subscribers []models.NewsletterSubscriber) models.BroadcastResult {
	result := models.BroadcastResult{}

	for _, subscriber := range subscribers {
		m := gomail.NewMessage()
		m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
		m.SetHeader("To", subscriber.Email)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", es.wrapText(textContent, subscriber.Email))
		m.AddAlternative("text/html", es.wrapHTML(subject, htmlContent, subscriber.Email))

		if err := es.dialer.DialAndSend(m); err != nil {
			fmt.Printf("Failed to send newsletter to %s: %v\n", subscriber.Email, err)
			result.Failed++
			continue
		}

		result.Sent++
	}

	result.Success = result.Failed == 0
	return result
}

// SendSubscribeConfirmation greets a new newsletter subscriber
func (es *EmailService) SendSubscribeConfirmation(email string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Üdvözlünk a Programláz hírlevélen!")

	htmlBody := es.wrapHTML("Üdvözlünk a Programláz hírlevélen!", `
            <h2>Köszönjük a feliratkozást!</h2>
            <p>Mostantól elsőként értesülsz a legjobb éttermekről, szálláshelyekről,
            látnivalókról és eseményekről Magyarországon.</p>
            <p>Jó böngészést kívánunk!</p>
            <p><strong>A Programláz csapata</strong></p>`, email)

	textBody := es.wrapText(`Köszönjük a feliratkozást!

Mostantól elsőként értesülsz a legjobb éttermekről, szálláshelyekről,
látnivalókról és eseményekről Magyarországon.

Jó böngészést kívánunk!
A Programláz csapata`, email)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

// wrapHTML puts the content into the branded newsletter frame with an
// unsubscribe link for the recipient
func (es *EmailService) wrapHTML(title, content, recipientEmail string) string {
	unsubscribeURL := fmt.Sprintf("%s/hirlevel/leiratkozas?email=%s", es.config.SiteBaseURL, recipientEmail)

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #e63946; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
        .footer a { color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Programláz</h1>
        </div>
        <div class="content">
            %s
        </div>
        <div class="footer">
            <p>© 2026 Programláz. Minden jog fenntartva.</p>
            <p><a href="%s">Leiratkozás a hírlevélről</a></p>
        </div>
    </div>
</body>
</html>`, title, content, unsubscribeURL)
}

func (es *EmailService) wrapText(content, recipientEmail string) string {
	unsubscribeURL := fmt.Sprintf("%s/hirlevel/leiratkozas?email=%s", es.config.SiteBaseURL, recipientEmail)

	return fmt.Sprintf(`%s

---
© 2026 Programláz. Minden jog fenntartva.
Leiratkozás: %s
`, content, unsubscribeURL)
}
