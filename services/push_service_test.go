// File: /services/push_service_test.go
package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"programlaz-api/config"
	"programlaz-api/models"
)

type fakeSubscriptionStore struct {
	subs     []models.PushSubscription
	deleted  []string
	recorded []*models.SentNotification
}

func (f *fakeSubscriptionStore) ListSubscriptions() ([]models.PushSubscription, error) {
	return f.subs, nil
}

func (f *fakeSubscriptionStore) DeleteSubscriptionByEndpoint(endpoint string) error {
	f.deleted = append(f.deleted, endpoint)
	return nil
}

func (f *fakeSubscriptionStore) RecordNotification(n *models.SentNotification) error {
	f.recorded = append(f.recorded, n)
	return nil
}

// fakePushSender answers with a per-endpoint status or error
type fakePushSender struct {
	statuses map[string]int
	errs     map[string]error
}

func (f *fakePushSender) Send(message []byte, sub *webpush.Subscription, options *webpush.Options) (int, error) {
	if err, ok := f.errs[sub.Endpoint]; ok {
		return 0, err
	}
	if status, ok := f.statuses[sub.Endpoint]; ok {
		return status, nil
	}
	return http.StatusCreated, nil
}

func pushTestConfig() *config.Config {
	return &config.Config{
		VAPIDSubject:    "mailto:admin@programlaz.hu",
		VAPIDPublicKey:  "public",
		VAPIDPrivateKey: "private",
	}
}

func subscription(endpoint string) models.PushSubscription {
	return models.PushSubscription{Endpoint: endpoint, P256dh: "p256dh", Auth: "auth"}
}

func TestBroadcastPrunesExpiredSubscriptions(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []models.PushSubscription{
			subscription("https://push.example/a"),
			subscription("https://push.example/b"),
			subscription("https://push.example/c"),
		},
	}

	svc := &PushService{
		config: pushTestConfig(),
		repo:   store,
		sender: &fakePushSender{statuses: map[string]int{"https://push.example/b": http.StatusGone}},
	}

	result, err := svc.Broadcast("Új helyek", "Friss éttermek a környékeden", "/helyek")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"https://push.example/b"}, store.deleted)
}

func TestBroadcastNotFoundAlsoPrunes(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []models.PushSubscription{subscription("https://push.example/gone")},
	}

	svc := &PushService{
		config: pushTestConfig(),
		repo:   store,
		sender: &fakePushSender{statuses: map[string]int{"https://push.example/gone": http.StatusNotFound}},
	}

	result, err := svc.Broadcast("Teszt", "Teszt üzenet", "")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, store.deleted, 1)
}

func TestBroadcastTransportErrorDoesNotPrune(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []models.PushSubscription{
			subscription("https://push.example/flaky"),
			subscription("https://push.example/ok"),
		},
	}

	svc := &PushService{
		config: pushTestConfig(),
		repo:   store,
		sender: &fakePushSender{errs: map[string]error{"https://push.example/flaky": errors.New("connection reset")}},
	}

	result, err := svc.Broadcast("Teszt", "Teszt üzenet", "")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, store.deleted)
}

func TestBroadcastRecordsAggregateCounts(t *testing.T) {
	store := &fakeSubscriptionStore{
		subs: []models.PushSubscription{
			subscription("https://push.example/a"),
			subscription("https://push.example/b"),
		},
	}

	svc := &PushService{
		config: pushTestConfig(),
		repo:   store,
		sender: &fakePushSender{statuses: map[string]int{"https://push.example/b": http.StatusBadRequest}},
	}

	_, err := svc.Broadcast("Hétvégi programok", "Nézd meg a legjobbakat", "/esemenyek")

	require.NoError(t, err)
	require.Len(t, store.recorded, 1)
	assert.Equal(t, "Hétvégi programok", store.recorded[0].Title)
	assert.Equal(t, 1, store.recorded[0].SentCount)
	assert.Equal(t, 1, store.recorded[0].FailedCount)
}

func TestBroadcastNoSubscriptions(t *testing.T) {
	store := &fakeSubscriptionStore{}

	svc := &PushService{
		config: pushTestConfig(),
		repo:   store,
		sender: &fakePushSender{},
	}

	result, err := svc.Broadcast("Teszt", "Teszt üzenet", "")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.True(t, result.Success)
}
