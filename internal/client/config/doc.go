// Package config loads runtime configuration for the notes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional YAML/JSON file, picked by extension (--config or NOTES_CONFIG).
//  3. Environment variables prefixed with NOTES_.
//  4. Command-line flags (see ApplyFlags), which override earlier values.
//
// # File schema
//
//	api_base_url: https://notes-api.dicoding.dev/v1
//	storage_path: notes.db
//	request_timeout: 10s
//	log_level: warn
//	log_mode: development
//
// In JSON files request_timeout is an integer number of nanoseconds.
package config
