// Package cli defines the Cobra command tree for the hugopost CLI. Each file
// in this package registers one top-level command (new, deploy, list, etc.)
// with the root command. Command implementations delegate to internal packages
// for the actual work and only handle flags, settings and output.
package cli
