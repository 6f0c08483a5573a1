package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// Config selects the output format, the minimum level and the fields stamped
// on every entry.
type Config struct {
	ServiceName string
	Environment string
	Level       string
}

// Console reports whether entries are written for humans instead of as JSON
func (c Config) Console() bool {
	return c.Environment == "" || c.Environment == "development"
}

// Logger is the process-wide logger. It discards everything until Init is called,
// so packages that log during tests stay quiet.
var Logger = zerolog.Nop()

// Init replaces the global logger and applies the configured level
func Init(cfg Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if cfg.Console() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	Logger = New(out, cfg)
	log.Logger = Logger
	SetLevel(cfg.Level)
}

// New builds a logger writing to w, stamped with the service and environment.
func New(w io.Writer, cfg Config) zerolog.Logger {
	fields := zerolog.New(w).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)
	if cfg.Environment != "" {
		fields = fields.Str("environment", cfg.Environment)
	}
	return fields.Logger()
}

// WithContext returns the global logger, carrying the span of ctx when there is one
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Logger

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With().
			Stringer("trace_id", sc.TraceID()).
			Stringer("span_id", sc.SpanID()).
			Bool("sampled", sc.IsSampled()).
			Logger()
	}

	return &l
}

func at(ctx context.Context, level zerolog.Level) *zerolog.Event {
	return WithContext(ctx).WithLevel(level)
}

func Debug(ctx context.Context) *zerolog.Event { return at(ctx, zerolog.DebugLevel) }
func Info(ctx context.Context) *zerolog.Event  { return at(ctx, zerolog.InfoLevel) }
func Warn(ctx context.Context) *zerolog.Event  { return at(ctx, zerolog.WarnLevel) }
func Error(ctx context.Context) *zerolog.Event { return at(ctx, zerolog.ErrorLevel) }

// SetLevel sets the global log level. Unknown levels fall back to info.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
