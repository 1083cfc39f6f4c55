// Package cli assembles the wiclone command tree: the Cobra root command with
// its logging and configuration flags, the clone and show subcommands, the
// embedded starter configuration, and the --init scaffolding that writes it
// to disk.
package cli
