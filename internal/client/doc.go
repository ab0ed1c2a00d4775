// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the session, presence and conversation services to a
// line-oriented command loop on the terminal and owns the lifecycle of the
// per-login chat session.
package client
