package lite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/databricks/databricks-sdk-go/logger"
	"github.com/fatih/color"
)

// friendlyHandler renders records as short colored console lines; level
// filtering comes from the embedded handler.
type friendlyHandler struct {
	slog.Handler
	w io.Writer
}

var levelLabels = map[slog.Level]string{
	slog.LevelDebug: color.YellowString("DEBUG"),
	slog.LevelInfo:  color.GreenString(" INFO"),
	slog.LevelWarn:  color.MagentaString(" WARN"),
	slog.LevelError: color.RedString("ERROR"),
}

func (l *friendlyHandler) Handle(ctx context.Context, rec slog.Record) error {
	label, ok := levelLabels[rec.Level]
	if !ok {
		label = rec.Level.String()
	}
	var sb strings.Builder
	sb.WriteString(color.MagentaString(rec.Time.Format("15:04")))
	sb.WriteByte(' ')
	sb.WriteString(label)
	sb.WriteByte(' ')
	sb.WriteString(rec.Message)
	rec.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%s",
			color.CyanString(a.Key),
			color.YellowString(a.Value.String()))
		return true
	})
	sb.WriteByte('\n')
	_, err := l.w.Write([]byte(sb.String()))
	return err
}

// LogContext returns a context whose SDK logger tags every message with
// the given key and value.
func LogContext(ctx context.Context, key, value string) context.Context {
	switch x := logger.Get(ctx).(type) {
	case *slogAdapter:
		return logger.NewContext(ctx, &slogAdapter{x.With(slog.String(key, value))})
	default:
		return ctx
	}
}

// slogAdapter makes an slog.Logger usable with the Databricks SDK.
type slogAdapter struct {
	*slog.Logger
}

// slog has no trace level, so SDK trace rides on debug.
var sdkLevels = map[logger.Level]slog.Level{
	logger.LevelTrace: slog.LevelDebug,
	logger.LevelDebug: slog.LevelDebug,
	logger.LevelInfo:  slog.LevelInfo,
	logger.LevelWarn:  slog.LevelWarn,
	logger.LevelError: slog.LevelError,
}

func (s *slogAdapter) Enabled(ctx context.Context, level logger.Level) bool {
	mapped, ok := sdkLevels[level]
	if !ok {
		return true
	}
	return s.Logger.Enabled(ctx, mapped)
}

func (s *slogAdapter) Tracef(ctx context.Context, format string, v ...any) {
	s.DebugContext(ctx, fmt.Sprintf(format, v...))
}

func (s *slogAdapter) Debugf(ctx context.Context, format string, v ...any) {
	s.DebugContext(ctx, fmt.Sprintf(format, v...))
}

func (s *slogAdapter) Infof(ctx context.Context, format string, v ...any) {
	s.InfoContext(ctx, fmt.Sprintf(format, v...))
}

func (s *slogAdapter) Warnf(ctx context.Context, format string, v ...any) {
	s.WarnContext(ctx, fmt.Sprintf(format, v...))
}

func (s *slogAdapter) Errorf(ctx context.Context, format string, v ...any) {
	s.ErrorContext(ctx, fmt.Sprintf(format, v...))
}
