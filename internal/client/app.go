package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/internal/tui"
	"github.com/elibowlby/christmas-list-app/models"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run restores the persisted session or walks the user through login, then
// hands control to the dashboard. Signing out destroys the session and
// starts over; quitting exits cleanly.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoSavedSession) {
			return fmt.Errorf("restore session: %w", err)
		}

		session, err = a.loginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	} else {
		a.logger.Info().Str("name", session.UserName).Msg("session restored")
	}

	logout, err := a.tui.MainLoop(ctx, session)
	if err != nil {
		return err
	}

	if logout {
		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Err(err).Msg("logout failed")
		}
		return a.Run()
	}

	return nil
}

func (a *App) loginFlow(ctx context.Context) (models.LocalSession, error) {
	session, err := a.tui.LoginFlow(ctx)
	if err != nil {
		return models.LocalSession{}, err
	}

	a.logger.Info().Str("name", session.UserName).Msg("logged in")
	return session, nil
}
