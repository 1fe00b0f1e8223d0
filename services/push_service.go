// File: /services/push_service.go
package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"

	"programlaz-api/config"
	"programlaz-api/models"
)

// PushSender delivers one Web Push message and reports the endpoint's HTTP
// status. Abstracted so broadcasts can be tested without a push gateway.
type PushSender interface {
	Send(message []byte, sub *webpush.Subscription, options *webpush.Options) (int, error)
}

type webpushSender struct{}

func (webpushSender) Send(message []byte, sub *webpush.Subscription, options *webpush.Options) (int, error) {
	resp, err := webpush.SendNotification(message, sub, options)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// subscriptionStore is the slice of the messaging repository broadcasts need
type subscriptionStore interface {
	ListSubscriptions() ([]models.PushSubscription, error)
	DeleteSubscriptionByEndpoint(endpoint string) error
	RecordNotification(n *models.SentNotification) error
}

type PushService struct {
	config *config.Config
	repo   subscriptionStore
	sender PushSender
}

func NewPushService(cfg *config.Config, repo subscriptionStore) *PushService {
	return &PushService{
		config: cfg,
		repo:   repo,
		sender: webpushSender{},
	}
}

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// Broadcast sends a notification to every stored subscription, one at a
// time. A failing recipient is counted and skipped, never aborts the rest.
// Endpoints answering 404/410 are expired and pruned from the store. The
// batch is logged as a SentNotification row with its aggregate counts.
func (s *PushService) Broadcast(title, body, url string) (models.BroadcastResult, error) {
	subs, err := s.repo.ListSubscriptions()
	if err != nil {
		return models.BroadcastResult{}, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	payload, err := json.Marshal(pushPayload{Title: title, Body: body, URL: url})
	if err != nil {
		return models.BroadcastResult{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	options := &webpush.Options{
		Subscriber:      s.config.VAPIDSubject,
		VAPIDPublicKey:  s.config.VAPIDPublicKey,
		VAPIDPrivateKey: s.config.VAPIDPrivateKey,
		TTL:             86400,
	}

	result := models.BroadcastResult{}
	for _, sub := range subs {
		status, err := s.sender.Send(payload, &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.P256dh,
				Auth:   sub.Auth,
			},
		}, options)

		if err != nil {
			result.Failed++
			continue
		}

		if status == http.StatusNotFound || status == http.StatusGone {
			// Expired subscription, remove it from the store
			if err := s.repo.DeleteSubscriptionByEndpoint(sub.Endpoint); err != nil {
				fmt.Printf("Warning: failed to prune expired subscription: %v\n", err)
			}
			result.Failed++
			continue
		}

		if status >= 400 {
			result.Failed++
			continue
		}

		result.Sent++
	}

	result.Success = result.Failed == 0

	record := &models.SentNotification{
		Title:       title,
		Body:        body,
		URL:         url,
		SentCount:   result.Sent,
		FailedCount: result.Failed,
	}
	if err := s.repo.RecordNotification(record); err != nil {
		fmt.Printf("Warning: failed to record notification: %v\n", err)
	}

	return result, nil
}
