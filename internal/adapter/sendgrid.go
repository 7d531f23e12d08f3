// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elibowlby/christmas-list-app/internal/config"
	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/go-resty/resty/v2"
)

const sendGridMailPath = "/v3/mail/send"

// sendGridMailer delivers HTML email through the SendGrid v3 REST API.
// One Send call maps to one POST /v3/mail/send with a single personalization.
type sendGridMailer struct {
	client    *resty.Client
	fromEmail string
	fromName  string
	logger    *logger.Logger
}

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridPersonalization struct {
	To      []sendGridAddress `json:"to"`
	Subject string            `json:"subject"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridMailRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Content          []sendGridContent         `json:"content"`
}

// NewSendGridMailer constructs a mailer authenticated with the configured API
// key. BaseURL is overridable for tests.
func NewSendGridMailer(cfg config.Mail, log *logger.Logger) *sendGridMailer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.sendgrid.com"
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second).
		SetAuthToken(cfg.APIKey)

	return &sendGridMailer{
		client:    cli,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    log,
	}
}

// Send delivers one HTML email. A non-2xx provider response is returned as an
// error carrying the provider's body for the caller's log.
func (m *sendGridMailer) Send(ctx context.Context, toEmail, subject, htmlBody string) error {
	payload := sendGridMailRequest{
		Personalizations: []sendGridPersonalization{
			{
				To:      []sendGridAddress{{Email: toEmail}},
				Subject: subject,
			},
		},
		From: sendGridAddress{Email: m.fromEmail, Name: m.fromName},
		Content: []sendGridContent{
			{Type: "text/html", Value: htmlBody},
		},
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(sendGridMailPath)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	if resp.IsError() {
		m.logger.Error().
			Str("func", "*sendGridMailer.Send").
			Str("to", toEmail).
			Int("status", resp.StatusCode()).
			Msg("sendgrid rejected mail")
		return fmt.Errorf("sendgrid responded %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	return nil
}
