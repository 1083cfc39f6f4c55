// Package execshell runs external tools on behalf of the CLI.
//
// ShellExecutor wraps a CommandRunner with structured lifecycle logging and an
// optional InvocationObserver for console mirroring; OSCommandRunner is the
// os/exec-backed default. The package describes az boards invocations in
// tracker terms so failures read like work item operations rather than raw
// command lines.
package execshell
