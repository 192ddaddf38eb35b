// Package config loads the assistant's configuration.
//
// Configuration comes from three layers, lowest priority first: built-in
// defaults, a TOML file, and PROOFLINE_* environment variables. A missing
// file is not an error; a malformed file is reported as a *ParseError.
package config
