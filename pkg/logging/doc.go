// Package logging configures zerolog for jt. Logs are written through the
// error stream of the execution context and stay silent below -v.
package logging
