// Package config loads and merges gitdraft configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GITDRAFT_MAX_CHARS, GITDRAFT_BASE, etc.)
//  3. Config file ($XDG_CONFIG_HOME/gitdraft/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key for the config command.
package config
