// Package filesystem provides the read-only filesystem jt loads input and
// config files from.
//
// Everything is built on afero so the same code serves the real disk and
// the in-memory filesystem used by tests.
package filesystem
