// Package config provides 12-factor configuration management for fnsh.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Shell: Evaluation settings (timeout, working directory)
//   - Window: Chunked head/tail reader settings
//   - Classifier: MIME classification settings
//   - Logging: Log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("chunk size: %d\n", cfg.Window.ChunkSize)
//
// Environment Variables:
//   - FNSH_TIMEOUT, FNSH_WORKDIR
//   - FNSH_CHUNK_SIZE, FNSH_SNIFF_LIMIT
//   - LOG_LEVEL, LOG_DEV
package config
