// Package document is jt's in-memory value model.
//
// A value is one of nil (null), bool, float64, string, []any, *Object or
// Undefined. Objects keep their keys in insertion order so that a JSON
// document read and written back keeps its shape. Undefined marks the
// absence of a value (a query that matched nothing) and is distinct from
// null.
package document
