// Package cli defines the Cobra root command for the demo launcher. The
// command takes no flags: its raw arguments are handed to the launcher,
// which either dispatches a demo or prints the catalog.
package cli
