// Package types defines the data model shared by every stage of a jt
// invocation: the input and output format enums, the color mode, and the
// per-invocation Options record.
package types
