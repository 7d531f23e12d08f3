// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/models"
)

// ─────────────────────────────────────────────
// POST /api/notify/pin
// ─────────────────────────────────────────────

func TestRequestPIN_Success(t *testing.T) {
	auth := &mockAuthService{
		resetPINFn: func(_ context.Context, name string) error {
			require.Equal(t, "Eli", name)
			return nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.PINResetRequest{Name: "Eli"})
	req := httptest.NewRequest(http.MethodPost, "/api/notify/pin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.requestPIN(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"PIN sent"}`, rec.Body.String())
}

func TestRequestPIN_RejectsNonPOST(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/notify/pin", nil)
	rec := httptest.NewRecorder()

	h.requestPIN(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Only POST allowed"}`, rec.Body.String())
}

func TestRequestPIN_AllowsPreflight(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/notify/pin", nil)
	rec := httptest.NewRecorder()

	h.requestPIN(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestPIN_MissingName(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)
	body := jsonBody(t, models.PINResetRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/notify/pin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.requestPIN(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Name is required"}`, rec.Body.String())
}

func TestRequestPIN_UnknownMember(t *testing.T) {
	auth := &mockAuthService{
		resetPINFn: func(_ context.Context, _ string) error {
			return store.ErrNoUserWasFound
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.PINResetRequest{Name: "Stranger"})
	req := httptest.NewRequest(http.MethodPost, "/api/notify/pin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.requestPIN(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestRequestPIN_MailDeliveryFails(t *testing.T) {
	auth := &mockAuthService{
		resetPINFn: func(_ context.Context, _ string) error {
			return service.ErrMailDeliveryFailed
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.PINResetRequest{Name: "Eli"})
	req := httptest.NewRequest(http.MethodPost, "/api/notify/pin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.requestPIN(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())
}

func TestRequestPIN_PINUpdateFails(t *testing.T) {
	auth := &mockAuthService{
		resetPINFn: func(_ context.Context, _ string) error {
			return service.ErrPINUpdateFailed
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.PINResetRequest{Name: "Eli"})
	req := httptest.NewRequest(http.MethodPost, "/api/notify/pin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.requestPIN(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to update user PIN"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// POST /api/notify/daily-summary
// ─────────────────────────────────────────────

func TestSendDailySummary_NoNewItems(t *testing.T) {
	digest := &mockDigestService{
		sendDailySummaryFn: func(_ context.Context) (string, error) {
			return "No new items to send.", nil
		},
	}

	h := newTestHandler(t, nil, nil, digest)
	req := httptest.NewRequest(http.MethodPost, "/api/notify/daily-summary", nil)
	rec := httptest.NewRecorder()

	h.sendDailySummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No new items to send.", rec.Body.String())
}

func TestSendDailySummary_RejectsNonPOST(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockDigestService{})
	req := httptest.NewRequest(http.MethodGet, "/api/notify/daily-summary", nil)
	rec := httptest.NewRecorder()

	h.sendDailySummary(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSendDailySummary_ServiceError(t *testing.T) {
	digest := &mockDigestService{
		sendDailySummaryFn: func(_ context.Context) (string, error) {
			return "", errors.New("query failed")
		},
	}

	h := newTestHandler(t, nil, nil, digest)
	req := httptest.NewRequest(http.MethodPost, "/api/notify/daily-summary", nil)
	rec := httptest.NewRecorder()

	h.sendDailySummary(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/notify/roster
// ─────────────────────────────────────────────

func TestSendRosterDigest_Success(t *testing.T) {
	digest := &mockDigestService{
		sendRosterFn: func(_ context.Context, requesterEmail string) (string, error) {
			require.Equal(t, "eli@example.com", requesterEmail)
			return "All gift ideas have been sent successfully!", nil
		},
	}

	h := newTestHandler(t, nil, nil, digest)
	body := jsonBody(t, models.RosterDigestRequest{RequesterEmail: "eli@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/notify/roster", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.sendRosterDigest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "All gift ideas have been sent successfully!", rec.Body.String())
}

func TestSendRosterDigest_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockDigestService{})
	req := httptest.NewRequest(http.MethodPost, "/api/notify/roster", strings.NewReader("{bad"))
	rec := httptest.NewRecorder()

	h.sendRosterDigest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// CORS wiring
// ─────────────────────────────────────────────

// TestNotifyRoutes_CORSHeaders drives a request through the full router and
// verifies that the notification group sets the CORS headers.
func TestNotifyRoutes_CORSHeaders(t *testing.T) {
	auth := &mockAuthService{
		resetPINFn: func(_ context.Context, _ string) error { return nil },
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/notify/pin", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
