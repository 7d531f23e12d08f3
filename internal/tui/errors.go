// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"strings"

	"github.com/elibowlby/christmas-list-app/internal/service"
)

// humanizeLoginError turns transport and auth errors into messages that make
// sense on the login screen.
func humanizeLoginError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrWrongPIN) {
		return "Invalid PIN"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unreachable"
	}

	return err.Error()
}
