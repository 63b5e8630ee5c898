// Package config loads jt's optional configuration.
//
// Values are layered with koanf, later layers winning:
//
//  1. the defaults embedded in the binary (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/jt/config.toml or --config
//  3. JT_OUTPUT_FORMAT, JT_INPUT_FORMAT and JT_LOG_LEVEL
//
// All reads go through the execution context, so tests load
// configuration from in-memory files and environments.
package config
