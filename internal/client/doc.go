// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and client services into a single process
// lifecycle: restore or establish a session, then run the dashboard until
// the user quits or signs out.
package client
