package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elibowlby/christmas-list-app/internal/config"
	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendGridMailer_Send(t *testing.T) {
	var got sendGridMailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer sg-test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	mailer := NewSendGridMailer(config.Mail{
		APIKey:    "sg-test-key",
		BaseURL:   srv.URL,
		FromEmail: "tracker@example.com",
		FromName:  "Family Gift Tracker",
	}, logger.Nop())

	err := mailer.Send(context.Background(), "alice@example.com", "Hello", "<p>Hi</p>")
	require.NoError(t, err)

	require.Len(t, got.Personalizations, 1)
	require.Len(t, got.Personalizations[0].To, 1)
	assert.Equal(t, "alice@example.com", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "Hello", got.Personalizations[0].Subject)
	assert.Equal(t, "tracker@example.com", got.From.Email)
	require.Len(t, got.Content, 1)
	assert.Equal(t, "text/html", got.Content[0].Type)
}

func TestSendGridMailer_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"bad from address"}]}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	mailer := NewSendGridMailer(config.Mail{APIKey: "sg-test-key", BaseURL: srv.URL}, logger.Nop())

	err := mailer.Send(context.Background(), "alice@example.com", "Hello", "<p>Hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad from address")
}
