// Package config defines configuration for the seedbed CLI.
//
// Configuration is resolved in three layers, later layers winning:
//
//  1. Defaults from Default()
//  2. A YAML config file (-config flag)
//  3. SEEDBED_* environment variables
//
// Command-line flags are merged on top by the CLI via Merge.
package config
