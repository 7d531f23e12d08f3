// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/elibowlby/christmas-list-app/internal/utils"
	"github.com/elibowlby/christmas-list-app/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	var loginResponse models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &loginResponse); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(token)
	return loginResponse.User, models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) RequestPINReset(ctx context.Context, name string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PINResetRequest{Name: name}).
		Post("/api/notify/pin")
	if err != nil {
		return fmt.Errorf("pin reset request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("get users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	return users, nil
}

func (h *httpServerAdapter) GetMyItems(ctx context.Context) ([]models.WishlistItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/items/my")
	if err != nil {
		return nil, fmt.Errorf("get my items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.WishlistItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode my items response: %w", err)
	}

	return items, nil
}

func (h *httpServerAdapter) GetAllItems(ctx context.Context) ([]models.WishlistItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/items")
	if err != nil {
		return nil, fmt.Errorf("get all items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.WishlistItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode all items response: %w", err)
	}

	return items, nil
}

func (h *httpServerAdapter) AddItem(ctx context.Context, request models.AddItemRequest) (models.WishlistItem, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/items")
	if err != nil {
		return models.WishlistItem{}, fmt.Errorf("add item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WishlistItem{}, err
	}

	var item models.WishlistItem
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.WishlistItem{}, fmt.Errorf("decode add item response: %w", err)
	}

	return item, nil
}

func (h *httpServerAdapter) EditItem(ctx context.Context, itemID int64, request models.EditItemRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Patch("/api/items/" + strconv.FormatInt(itemID, 10))
	if err != nil {
		return fmt.Errorf("edit item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) MarkPurchased(ctx context.Context, itemID int64) error {
	resp, err := h.authedRequest(ctx).
		Post("/api/items/" + strconv.FormatInt(itemID, 10) + "/purchase")
	if err != nil {
		return fmt.Errorf("mark purchased request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) UnmarkPurchased(ctx context.Context, itemID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/items/" + strconv.FormatInt(itemID, 10) + "/purchase")
	if err != nil {
		return fmt.Errorf("unmark purchased request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
