// Package config provides the application's configuration structures.
//
// Settings are built from CLI flags, validated with go-playground/validator,
// and passed read-only to the components that consume them.
package config
