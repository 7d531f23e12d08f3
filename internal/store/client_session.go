// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/models"
)

const (
	createSessionTable = `CREATE TABLE IF NOT EXISTS session (
        id INTEGER PRIMARY KEY CHECK (id = 1),
        user_id INTEGER NOT NULL,
        user_name TEXT NOT NULL,
        token TEXT NOT NULL,
        selected_member_id INTEGER NOT NULL DEFAULT 0,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    );`

	upsertSession = `INSERT INTO session (id, user_id, user_name, token, selected_member_id)
    VALUES (1, ?, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE SET
        user_id = excluded.user_id,
        user_name = excluded.user_name,
        token = excluded.token,
        selected_member_id = excluded.selected_member_id;`

	selectSession = `SELECT user_id, user_name, token, selected_member_id, created_at
    FROM session
    WHERE id = 1;`

	deleteSession = `DELETE FROM session WHERE id = 1;`

	updateSelectedMember = `UPDATE session SET selected_member_id = ? WHERE id = 1;`
)

// sessionStore is the SQLite-backed implementation of [SessionStore]. The
// session table holds at most one row: the currently logged-in user.
type sessionStore struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionStore constructs a [SessionStore] on the local database and
// creates the session table if it is missing.
func NewSessionStore(ctx context.Context, db *DB, log *logger.Logger) (SessionStore, error) {
	if _, err := db.ExecContext(ctx, createSessionTable); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error creating session table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &sessionStore{
		db:     db,
		logger: log,
	}, nil
}

// SaveSession replaces any previously stored session with the given one.
func (s *sessionStore) SaveSession(ctx context.Context, session models.LocalSession) error {
	log := logger.FromContext(ctx)

	_, err := s.db.ExecContext(ctx, upsertSession, session.UserID, session.UserName, session.Token, session.SelectedMemberID)
	if err != nil {
		log.Err(err).Str("func", "*sessionStore.SaveSession").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns the stored session or [ErrNoSavedSession] when the
// user has never logged in (or has logged out).
func (s *sessionStore) GetSession(ctx context.Context) (models.LocalSession, error) {
	log := logger.FromContext(ctx)

	var session models.LocalSession
	row := s.db.QueryRowContext(ctx, selectSession)

	if err := row.Scan(&session.UserID, &session.UserName, &session.Token, &session.SelectedMemberID, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalSession{}, ErrNoSavedSession
		}
		log.Err(err).Str("func", "*sessionStore.GetSession").Msg("error: scanning error")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// DestroySession removes the stored session. Destroying an absent session
// is not an error.
func (s *sessionStore) DestroySession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.db.ExecContext(ctx, deleteSession); err != nil {
		log.Err(err).Str("func", "*sessionStore.DestroySession").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SaveSelectedMember remembers whose wishlist the family pane was last
// showing so the choice survives restarts.
func (s *sessionStore) SaveSelectedMember(ctx context.Context, memberID int64) error {
	log := logger.FromContext(ctx)

	result, err := s.db.ExecContext(ctx, updateSelectedMember, memberID)
	if err != nil {
		log.Err(err).Str("func", "*sessionStore.SaveSelectedMember").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoSavedSession
	}

	return nil
}
