// File: /services/email_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"programlaz-api/config"
	"programlaz-api/models"
)

type fakeDialer struct {
	failFor map[string]bool
	sentTo  []string
}

func (f *fakeDialer) DialAndSend(msgs ...*gomail.Message) error {
	for _, m := range msgs {
		to := m.GetHeader("To")[0]
		if f.failFor[to] {
			return errors.New("smtp rejected recipient")
		}
		f.sentTo = append(f.sentTo, to)
	}
	return nil
}

func emailTestService(dialer mailDialer) *EmailService {
	return &EmailService{
		config: &config.Config{
			FromName:    "Programláz",
			FromEmail:   "hirlevel@programlaz.hu",
			SiteBaseURL: "https://programlaz.hu",
		},
		dialer: dialer,
	}
}

func newsletterSubscribers(emails ...string) []models.NewsletterSubscriber {
	subs := make([]models.NewsletterSubscriber, 0, len(emails))
	for _, e := range emails {
		subs = append(subs, models.NewsletterSubscriber{Email: e, IsActive: true})
	}
	return subs
}

func TestSendNewsletterAllSucceed(t *testing.T) {
	dialer := &fakeDialer{}
	svc := emailTestService(dialer)

	result := svc.SendNewsletter("Heti ajánló", "<p>Programok</p>", "Programok",
		newsletterSubscribers("a@example.com", "b@example.com"))

	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, dialer.sentTo)
}

func TestSendNewsletterOneFailureContinues(t *testing.T) {
	dialer := &fakeDialer{failFor: map[string]bool{"b@example.com": true}}
	svc := emailTestService(dialer)

	result := svc.SendNewsletter("Heti ajánló", "<p>Programok</p>", "Programok",
		newsletterSubscribers("a@example.com", "b@example.com", "c@example.com"))

	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Success)
	// The failing recipient did not stop the rest of the batch
	assert.Contains(t, dialer.sentTo, "c@example.com")
}

func TestSendNewsletterNoSubscribers(t *testing.T) {
	svc := emailTestService(&fakeDialer{})

	result := svc.SendNewsletter("Heti ajánló", "<p>Programok</p>", "Programok", nil)

	assert.Equal(t, 0, result.Sent)
	assert.True(t, result.Success)
}

func TestSendSubscribeConfirmation(t *testing.T) {
	dialer := &fakeDialer{}
	svc := emailTestService(dialer)

	err := svc.SendSubscribeConfirmation("uj@example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"uj@example.com"}, dialer.sentTo)
}

func TestSendSubscribeConfirmationError(t *testing.T) {
	dialer := &fakeDialer{failFor: map[string]bool{"uj@example.com": true}}
	svc := emailTestService(dialer)

	err := svc.SendSubscribeConfirmation("uj@example.com")
	assert.Error(t, err)
}

func TestWrapHTMLContainsUnsubscribeLink(t *testing.T) {
	svc := emailTestService(&fakeDialer{})

	html := svc.wrapHTML("Teszt", "<p>tartalom</p>", "valaki@example.com")
	assert.Contains(t, html, "https://programlaz.hu/hirlevel/leiratkozas?email=valaki@example.com")
	assert.Contains(t, html, "<p>tartalom</p>")
}
