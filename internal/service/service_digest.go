// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/models"
)

const (
	dailySummarySubject = "Daily Summary of New Gift Ideas"
	rosterDigestSubject = "🎄 Complete Gift Ideas for the Season 🎁"

	// summaryWindow is how far back the daily summary looks for new items.
	summaryWindow = 24 * time.Hour

	noNewItemsMessage       = "No new items to send."
	summariesSentMessage    = "Daily summaries sent."
	rosterDigestSentMessage = "All gift ideas have been sent successfully!"
)

// digestService is the concrete implementation of DigestService. It builds
// the two email campaigns the household relies on: a per-member daily
// summary of freshly added gift ideas, and a full roster digest of every
// wishlist sent to everyone at once.
type digestService struct {
	userRepository store.UserRepository
	itemRepository store.ItemRepository
	mailer         Mailer
	logger         *logger.Logger
}

// NewDigestService constructs a DigestService backed by the given
// repositories and mailer.
func NewDigestService(userRepository store.UserRepository, itemRepository store.ItemRepository, mailer Mailer, logger *logger.Logger) DigestService {
	return &digestService{
		userRepository: userRepository,
		itemRepository: itemRepository,
		mailer:         mailer,
		logger:         logger,
	}
}

// SendDailySummary emails each family member the gift ideas added by OTHER
// members during the last 24 hours. Members whose window contains only their
// own items are skipped, so nobody is tipped off about gifts for themselves.
//
// Delivery failures for individual recipients are logged and do not stop the
// remaining sends. The returned message reports the overall outcome.
func (s *digestService) SendDailySummary(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	since := time.Now().Add(-summaryWindow)
	newItems, err := s.itemRepository.GetItemsCreatedSince(ctx, since)
	if err != nil {
		log.Err(err).Msg("fetching new items failed")
		return "", fmt.Errorf("fetching new items failed: %w", err)
	}
	if len(newItems) == 0 {
		return noNewItemsMessage, nil
	}

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("fetching users failed")
		return "", fmt.Errorf("fetching users failed: %w", err)
	}

	for _, user := range users {
		otherItems := itemsNotOwnedBy(newItems, user.UserID)
		if len(otherItems) == 0 {
			continue
		}

		body := renderDailySummaryEmail(user.Name, otherItems)
		if err = s.mailer.Send(ctx, user.Email, dailySummarySubject, body); err != nil {
			log.Err(err).Str("email", user.Email).Msg("sending daily summary failed")
			continue
		}
	}

	return summariesSentMessage, nil
}

// SendRosterDigest emails the complete household wishlist, owner names
// included, to every registered member.
//
// The requester is looked up by email for the audit log only; any caller who
// reaches this operation may trigger the digest.
func (s *digestService) SendRosterDigest(ctx context.Context, requesterEmail string) (string, error) {
	log := logger.FromContext(ctx)

	requester, err := s.userRepository.FindUserByEmail(ctx, requesterEmail)
	if err != nil {
		log.Warn().Str("email", requesterEmail).Msg("roster digest requested by unknown email")
	} else {
		log.Info().Str("name", requester.Name).Msg("roster digest requested")
	}

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("fetching users failed")
		return "", fmt.Errorf("fetching users failed: %w", err)
	}

	allItems, err := s.itemRepository.GetAllItems(ctx)
	if err != nil {
		log.Err(err).Msg("fetching all items failed")
		return "", fmt.Errorf("fetching all items failed: %w", err)
	}

	body := renderRosterDigestEmail(allItems)
	for _, user := range users {
		if err = s.mailer.Send(ctx, user.Email, rosterDigestSubject, body); err != nil {
			log.Err(err).Str("email", user.Email).Msg("sending roster digest failed")
			continue
		}
	}

	return rosterDigestSentMessage, nil
}

func itemsNotOwnedBy(items []models.WishlistItem, ownerID int64) []models.WishlistItem {
	others := make([]models.WishlistItem, 0, len(items))
	for _, item := range items {
		if !item.IsOwnedBy(ownerID) {
			others = append(others, item)
		}
	}
	return others
}

func renderDailySummaryEmail(userName string, items []models.WishlistItem) string {
	var list strings.Builder
	for _, item := range items {
		list.WriteString("<li><strong>" + html.EscapeString(item.ItemName) + "</strong><br/>")
		if item.ItemLink != nil && *item.ItemLink != "" {
			list.WriteString(`<a href="` + html.EscapeString(*item.ItemLink) + `">View Item</a><br/>`)
		}
		if item.ItemNotes != nil && *item.ItemNotes != "" {
			list.WriteString("<em>Notes:</em> " + html.EscapeString(*item.ItemNotes))
		}
		list.WriteString("</li>")
	}

	return fmt.Sprintf(`
    <div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f0f8ff; padding: 20px; max-width: 600px; margin: 0 auto; border-radius: 10px;">
      <header style="text-align: center; border-bottom: 2px solid #4a90e2; padding-bottom: 10px; margin-bottom: 20px;">
        <h1 style="color: #4a90e2;">🎄 Daily Gift Ideas Summary 🎁</h1>
      </header>
      <p style="font-size: 16px; color: #333;">Hello %s,</p>
      <p style="font-size: 16px; color: #333;">Here are the new gift ideas added by your family members today:</p>
      <ul style="list-style-type: none; padding: 0;">%s</ul>
      <p style="font-size: 16px; color: #333;">Happy gifting! 🛍️</p>
      <footer style="text-align: center; color: #666; font-size: 12px; margin-top: 30px;">
        If you have any questions, feel free to reach out.
      </footer>
    </div>`, html.EscapeString(userName), list.String())
}

func renderRosterDigestEmail(items []models.WishlistItem) string {
	var list strings.Builder
	for _, item := range items {
		list.WriteString(`<li style="margin-bottom: 10px;"><strong>` + html.EscapeString(item.ItemName) + "</strong><br/>")
		if item.ItemLink != nil && *item.ItemLink != "" {
			list.WriteString(`<a href="` + html.EscapeString(*item.ItemLink) + `" style="color: #ff0000;">View Item</a><br/>`)
		}
		if item.ItemNotes != nil && *item.ItemNotes != "" {
			list.WriteString("<em>Notes:</em> " + html.EscapeString(*item.ItemNotes))
		}
		list.WriteString(`<p style="color: #008000;">— Added by ` + html.EscapeString(item.OwnerName) + "</p></li>")
	}

	return fmt.Sprintf(`
    <div style="font-family: 'Verdana', sans-serif; background-color: #f9fafb; padding: 30px; max-width: 700px; margin: 0 auto; border: 2px solid #d9534f; border-radius: 15px;">
      <header style="text-align: center; border-bottom: 3px solid #d9534f; padding-bottom: 15px; margin-bottom: 20px;">
        <h1 style="color: #d9534f;">🎅 Merry Christmas from Family Gift Tracker! 🎄</h1>
      </header>
      <p style="font-size: 18px; color: #333;">Hello,</p>
      <p style="font-size: 18px; color: #333;">Here is the complete list of gift ideas from all your family members:</p>
      <ul style="list-style-type: none; padding: 0;">%s</ul>
      <p style="font-size: 18px; color: #333;">Wishing you a joyful holiday season! 🎁✨</p>
      <footer style="text-align: center; color: #777; font-size: 14px; margin-top: 30px;">
        If you have any questions, feel free to reach out.
      </footer>
    </div>`, list.String())
}
