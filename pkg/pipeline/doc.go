// Package pipeline runs one jt invocation: it acquires the input through
// the execution context, settles the input format, validates the option
// combination, parses, optionally queries, and serializes the result.
//
// Every stage reports failures as *errors.JtError. HandleError is the
// single place where a failure turns into an error block and exit code 1.
package pipeline
