package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simontuck/gdc2025-website-sub001/internal/config"
)

func TestSendMissingAPIKeyMakesNoNetworkCall(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	c := NewClient(config.MailConfig{APIKey: "", BaseURL: srv.URL})
	res, err := c.Send(context.Background(), SendRequest{To: []string{"ada@example.org"}, Subject: "s", HTML: "<p>x</p>"})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, c.Configured())
	assert.Zero(t, atomic.LoadInt64(&calls), "a misconfigured client must not touch the network")
}

func TestSendSuccess(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	c := NewClient(config.MailConfig{
		APIKey:  "re_test_key",
		From:    "GDC 2025 <bookings@gdc2025.ch>",
		ReplyTo: "info@gdc2025.ch",
		BaseURL: srv.URL,
	})
	res, err := c.Send(context.Background(), SendRequest{
		To:      []string{"ada@example.org"},
		Subject: "Your GDC 2025 booking confirmation",
		HTML:    "<p>thanks</p>",
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "msg_123", res.ID)
	assert.False(t, res.SentAt.IsZero())

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "/emails", gotPath)
	assert.Equal(t, "GDC 2025 <bookings@gdc2025.ch>", gotBody["from"])
	assert.Equal(t, []any{"ada@example.org"}, gotBody["to"])
	assert.Equal(t, "Your GDC 2025 booking confirmation", gotBody["subject"])
	assert.Equal(t, "<p>thanks</p>", gotBody["html"])
	assert.Equal(t, "info@gdc2025.ch", gotBody["reply_to"])
}

func TestSendProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	c := NewClient(config.MailConfig{APIKey: "re_test_key", BaseURL: srv.URL})
	res, err := c.Send(context.Background(), SendRequest{To: []string{"ada@example.org"}, Subject: "s", HTML: "x"})

	assert.Nil(t, res)
	var de *DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusUnprocessableEntity, de.StatusCode)
	assert.Contains(t, de.Body, "invalid from address")
}

func TestSendProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	c := NewClient(config.MailConfig{APIKey: "re_test_key", BaseURL: srv.URL})
	res, err := c.Send(context.Background(), SendRequest{To: []string{"ada@example.org"}, Subject: "s", HTML: "x"})

	assert.Nil(t, res)
	require.Error(t, err)
	// Transport failures are neither configuration nor delivery errors.
	assert.NotErrorIs(t, err, ErrNotConfigured)
	var de *DeliveryError
	assert.False(t, errors.As(err, &de))
}
