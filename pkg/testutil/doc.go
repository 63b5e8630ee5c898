// Package testutil provides shared helpers for jt tests: isolated
// in-memory execution contexts and assertions on structured errors and
// colored output.
package testutil
