package repository

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger routes pgx tracelog output through zerolog so SQL noise carries
// the same component tagging as the rest of the service and stays filterable.
type pgxLogger struct {
	log zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	return &pgxLogger{log: logger.With().Str("component", "pgx").Logger()}
}

func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace:
		event = l.log.Trace()
		// Promote the statement and args to typed fields at trace level.
		if sql, ok := data["sql"].(string); ok {
			event = event.Str("sql", sql)
			delete(data, "sql")
		}
		if args, ok := data["args"]; ok {
			event = event.Interface("args", args)
			delete(data, "args")
		}
	case tracelog.LogLevelDebug:
		event = l.log.Debug()
	case tracelog.LogLevelInfo:
		event = l.log.Info()
	case tracelog.LogLevelWarn:
		event = l.log.Warn()
	case tracelog.LogLevelError:
		event = l.log.Error()
	default:
		event = l.log.Info().Str("pgx_log_level", level.String())
	}

	if len(data) > 0 {
		event = event.Fields(data)
	}
	event.Msg(msg)
}
