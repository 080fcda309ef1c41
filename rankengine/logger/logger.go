package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeSweep  LogType = "SWEEP"
	TypeRank   LogType = "RANK"
	TypeDB     LogType = "DB"
	TypeSystem LogType = "SYS"
	TypeError  LogType = "ERR"
)

type CustomHandler struct {
	opts   *slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns the colored console handler. A nil opts logs from Info up.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *CustomHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: slog.LevelInfo}
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	return &CustomHandler{
		opts:   opts,
		out:    out,
		mu:     &sync.Mutex{},
		attrs:  make([]slog.Attr, 0),
		groups: make([]string, 0),
	}
}

// New builds the process logger. format "json" selects slog's JSON handler.
func New(level slog.Level, format string, addSource bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, AddSource: addSource}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(NewHandler(os.Stderr, opts))
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &CustomHandler{
		opts:   h.opts,
		out:    h.out,
		mu:     h.mu,
		attrs:  merged,
		groups: h.groups,
	}
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	groups := make([]string, 0, len(h.groups)+1)
	groups = append(groups, h.groups...)
	groups = append(groups, name)
	return &CustomHandler{
		opts:   h.opts,
		out:    h.out,
		mu:     h.mu,
		attrs:  h.attrs,
		groups: groups,
	}
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	timestamp := r.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor = colorRed
		levelText = "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor = colorYellow
		levelText = "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor = colorGreen
		levelText = "INFO"
	default:
		levelColor = colorPurple
		levelText = "DEBUG"
	}

	logType := h.logType(&r)

	message := r.Message
	if r.Level >= slog.LevelError {
		if location := errorLocation(&r, h.opts.AddSource); location != "" {
			message = fmt.Sprintf("%s (%s)", message, location)
		}
		if details := attrString(&r, "error"); details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}

	if userID := attrString(&r, "user_id"); userID != "" {
		message = fmt.Sprintf("%s [user %s]", message, userID)
	}

	if took := attrString(&r, "took"); took != "" {
		message = fmt.Sprintf("%s (took %s)", message, took)
	}

	var sb strings.Builder
	prefix := strings.Join(h.groups, ".")
	for _, attr := range h.attrs {
		writeAttr(&sb, prefix, attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, prefix, a)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[RankEngine] [%s] [%s%s%s] [%s] %s%s%s\n",
		colorWhite,
		timestamp.Format("15:04:05"),
		levelColor,
		levelText,
		colorWhite,
		logType,
		message,
		sb.String(),
		colorReset,
	)
	return err
}

func (h *CustomHandler) logType(r *slog.Record) LogType {
	value := attrString(r, "type")
	if value == "" {
		for _, a := range h.attrs {
			if a.Key == "type" {
				value = a.Value.String()
			}
		}
	}

	switch value {
	case "sweep":
		return TypeSweep
	case "rank":
		return TypeRank
	case "db":
		return TypeDB
	case "error":
		return TypeError
	}
	return TypeSystem
}

func writeAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	if isInternalAttr(attr.Key) {
		return
	}
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	fmt.Fprintf(sb, " %s=%v", key, attr.Value)
}

func isInternalAttr(key string) bool {
	switch key {
	case "type", "user_id", "error", "error_location", "took":
		return true
	}
	return false
}

func attrString(r *slog.Record, key string) string {
	var value string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			return false
		}
		return true
	})
	return value
}

func errorLocation(r *slog.Record, addSource bool) string {
	if location := attrString(r, "error_location"); location != "" {
		return location
	}
	if !addSource || r.PC == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
