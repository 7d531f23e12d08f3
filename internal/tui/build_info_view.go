// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/elibowlby/christmas-list-app/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Family Gift Tracker"))
	b.WriteString("\n\nVersion: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nBuilt:   ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit:  ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc: back"))

	return overlayBoxStyle.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
