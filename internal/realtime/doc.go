// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime owns the persistent bidirectional connection to the chat
// server's realtime endpoint.
//
// A [Connection] moves through four states:
//
//	Disconnected -> Connecting -> Connected <-> Reconnecting
//
// Disconnected is both the initial state and the terminal state reached only
// through [Connection.Disconnect]. Every time the link enters Connected the
// client re-announces its identity ("join" and "addUser") before any inbound
// event is read, because the server routes messages by channel membership.
// Drops are retried forever with capped exponential backoff.
//
// Inbound traffic is decoded into [Event] values and handed to subscribers
// from a single goroutine, so handlers observe events in wire order.
package realtime
