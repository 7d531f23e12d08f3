// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/elibowlby/christmas-list-app/internal/config"
	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/internal/utils"
	"github.com/elibowlby/christmas-list-app/models"
)

const pinEmailSubject = "Your Family Gift Tracker PIN"

// authService is the concrete implementation of AuthService.
// It handles PIN verification, PIN reset delivery, and JWT token lifecycle
// using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to look up family members.
	userRepository store.UserRepository

	// mailer delivers PIN reset emails.
	mailer Mailer

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// newPIN generates a fresh six-digit PIN. Replaceable in tests.
	newPIN func() string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mailer Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailer:         mailer,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		newPIN:         generatePIN,
		logger:         logger,
	}
}

// Login authenticates a family member by name and PIN.
//
// Returns the matched user record or:
//   - ErrInvalidDataProvided if Name or PIN is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found, see store.ErrNoUserWasFound).
//   - ErrWrongPIN if the stored PIN does not match.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" || request.PIN == "" {
		log.Error().Str("name", request.Name).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByName(ctx, request.Name)
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if foundUser.PIN != request.PIN {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("name", foundUser.Name).
			Msg("wrong PIN")
		return models.User{}, ErrWrongPIN
	}

	return foundUser, nil
}

// ResetPIN generates a fresh six-digit PIN for the named family member,
// stores it, and emails it to the member's registered address.
//
// The previous PIN stops working as soon as the new one is stored, even if
// the email delivery afterwards fails.
//
// Returns:
//   - ErrInvalidDataProvided if name is empty.
//   - store.ErrNoUserWasFound (wrapped) if no member has that name.
//   - ErrPINUpdateFailed if the new PIN cannot be stored.
//   - ErrMailDeliveryFailed if the email cannot be sent.
func (a *authService) ResetPIN(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if name == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByName(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("user search by name failed")
		return fmt.Errorf("user search by name failed: %w", err)
	}

	pin := a.newPIN()
	if err = a.userRepository.UpdateUserPIN(ctx, user.UserID, pin); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("failed to store new PIN")
		return fmt.Errorf("%w: %w", ErrPINUpdateFailed, err)
	}

	body := renderPINEmail(user.Name, pin)
	if err = a.mailer.Send(ctx, user.Email, pinEmailSubject, body); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("failed to send PIN email")
		return fmt.Errorf("%w: %w", ErrMailDeliveryFailed, err)
	}

	log.Info().Int64("id", user.UserID).Msg("PIN reset email sent")
	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// generatePIN returns a uniformly random six-digit PIN in [100000, 999999].
func generatePIN() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}

func renderPINEmail(name, pin string) string {
	return fmt.Sprintf(`
    <div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
      <h1 style="color: #2563eb;">Family Gift Tracker</h1>
      <p>Hello %s,</p>
      <p>Your new PIN is: <strong>%s</strong></p>
      <p>Use this PIN to log in to your account.</p>
      <p style="color: #666;">If you didn't request this PIN, please ignore this email.</p>
    </div>
    `, name, pin)
}
