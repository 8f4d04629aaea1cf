/*
Package log provides structured logging for Helmsman built on zerolog.

Call Init once at startup, then use the package-level helpers or derive
child loggers with bound fields:

	log.Init(log.Config{Level: log.InfoLevel})

	logger := log.WithComponent("config")
	logger.Info().Int("servers", servers).Msg("configuration reconciled")

Console output (human readable) is the default; JSONOutput switches to
machine-parseable JSON lines.
*/
package log
