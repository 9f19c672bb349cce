// Package config manages user-level launcher settings stored at
// ~/.demolauncher/config.yaml and DEMOLAUNCHER_* environment variables.
// Settings cover the launcher shell only (exit policy, log level, startup
// banner); the catalog and dispatch core never read them directly.
package config
