// Package config loads orderform settings using Viper: built-in defaults,
// an optional YAML file, ORDERFORM_* environment variables, and explicit
// overrides from command-line flags, in increasing precedence.
package config
