// Package pubsub implements a small generic broadcast primitive: a registry
// of subscriber channels, each fed independently on every publish.
//
// The Broker conflates rather than buffers: each subscriber channel holds at
// most the configured number of undelivered values (one by default), and a
// slow consumer observes the latest value instead of growing a backlog.
// Unsubscription is consumer-driven via context cancellation, never polled.
package pubsub
