// Package utils bundles the configuration and logging plumbing shared by the
// CLI commands: a Viper-backed ConfigurationLoader, a zap LoggerFactory with
// optional lumberjack file rotation, and context helpers recording which
// configuration file a run resolved.
package utils
