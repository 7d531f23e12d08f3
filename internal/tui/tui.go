package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the login screen and blocks until the user signs in or
// quits. On success it returns the freshly persisted session.
func (t *TUI) LoginFlow(ctx context.Context) (models.LocalSession, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.LocalSession{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.LocalSession{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.LocalSession{}, result.err
	}

	return result.session, nil
}

// MainLoop runs the dashboard until the user quits or signs out. The logout
// result tells the caller to destroy the session and restart the login flow.
func (t *TUI) MainLoop(ctx context.Context, session models.LocalSession) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, session, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
