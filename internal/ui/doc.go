// Package ui echoes tracker CLI invocations to the console.
//
// ConsoleMirror implements execshell.InvocationObserver on top of a zap logger
// configured for human-readable output, keeping structured telemetry and
// console feedback separate.
package ui
