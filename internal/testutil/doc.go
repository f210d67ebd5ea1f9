// Package testutil holds helpers for integration tests that need a real
// Postgres instance. Everything database-backed is behind the integration
// build tag.
package testutil
