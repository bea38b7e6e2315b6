// Package config handles application configuration loading and validation.
//
// Configuration is optional. When present it is read from a YAML file,
// layered over Default() and validated using struct tags.
package config
