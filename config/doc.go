// Package config loads mazesolve settings from YAML, .env files and
// MAZE_* environment variables.
//
// Resolution order: Default, then the YAML file given to Load, then .env
// files (LoadEnv, never overriding variables already set), then MAZE_*
// variables applied by ApplyEnv:
//
//	MAZE_CACHE_DIR, MAZE_CACHE_ENABLED, MAZE_LOG_LEVEL,
//	MAZE_LOG_FORMAT, MAZE_OUTPUT_SCALE
//
// Errors:
//
//   - Load wraps read and parse failures.
//   - Validate rejects a scale below 1, a negative margin, unknown log levels
//     or formats, and an enabled cache without a directory.
package config
