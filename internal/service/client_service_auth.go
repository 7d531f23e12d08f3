// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/elibowlby/christmas-list-app/internal/adapter"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/models"
)

type clientAuthService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
}

func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter}
}

func (a *clientAuthService) Login(ctx context.Context, name, pin string) (models.LocalSession, error) {
	if name == "" || pin == "" {
		return models.LocalSession{}, ErrInvalidDataProvided
	}

	user, token, err := a.adapter.Login(ctx, models.LoginRequest{Name: name, PIN: pin})
	if err != nil {
		return models.LocalSession{}, mapAdapterError(err)
	}

	session := models.LocalSession{
		UserID:   user.UserID,
		UserName: user.Name,
		Token:    token.SignedString,
	}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.LocalSession{}, fmt.Errorf("saving session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.LocalSession, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return models.LocalSession{}, err
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.DestroySession(ctx); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}

	a.adapter.SetToken("")
	return nil
}

func (a *clientAuthService) RequestPINReset(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidDataProvided
	}

	if err := a.adapter.RequestPINReset(ctx, name); err != nil {
		return mapAdapterError(err)
	}
	return nil
}
