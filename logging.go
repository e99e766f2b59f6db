package docdb

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jdziat/docdb-go/pkg/auth"
)

// Logger is a printf-style logger such as *log.Logger. WithLogger adapts it
// with WrapPrintfLogger.
type Logger interface {
	Printf(format string, v ...any)
}

// StructuredLogger is a leveled key-value logger shaped like log/slog.
//
//	res := docdb.IssueRequest(ctx, endpoint, key, "GET", "",
//	    docdb.WithStructuredLogger(docdb.NewSlogAdapter(slog.Default())),
//	)
type StructuredLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// WrapPrintfLogger turns a printf-style Logger into a StructuredLogger.
// Each entry becomes one line: "[LEVEL] msg | k=v k=v".
func WrapPrintfLogger(l Logger) StructuredLogger {
	return printfLogger{l}
}

type printfLogger struct {
	out Logger
}

func (p printfLogger) Debug(msg string, args ...any) { p.log("DEBUG", msg, args) }
func (p printfLogger) Info(msg string, args ...any)  { p.log("INFO", msg, args) }
func (p printfLogger) Warn(msg string, args ...any)  { p.log("WARN", msg, args) }
func (p printfLogger) Error(msg string, args ...any) { p.log("ERROR", msg, args) }

// log never passes msg as the format: tokens are URL-escaped and full of %.
func (p printfLogger) log(level, msg string, args []any) {
	var b strings.Builder
	b.WriteString("[" + level + "] " + msg)
	if len(args) > 0 {
		b.WriteString(" |")
	}
	// A trailing key without a value is dropped.
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	p.out.Printf("%s", b.String())
}

// NopLogger discards everything. It is the default logger.
type NopLogger struct{}

func (NopLogger) Printf(format string, v ...any) {}
func (NopLogger) Debug(msg string, args ...any)  {}
func (NopLogger) Info(msg string, args ...any)   {}
func (NopLogger) Warn(msg string, args ...any)   {}
func (NopLogger) Error(msg string, args ...any)  {}

var (
	_ Logger           = NopLogger{}
	_ StructuredLogger = NopLogger{}
	_ StructuredLogger = (*SlogAdapter)(nil)
)

// MaskCredential hides all but the last 4 characters of a master key or
// authorization token.
//
//	MaskCredential("ZG9jZGItdGVzdC1rZXk=") => "****************ZXk="
//	MaskCredential("short") => "****"
func MaskCredential(s string) string {
	return auth.MaskKey(s)
}

// SlogAdapter logs through a *slog.Logger.
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	res := docdb.IssueRequest(ctx, endpoint, key, "GET", "",
//	    docdb.WithStructuredLogger(docdb.NewSlogAdapter(logger)),
//	)
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }
func (a *SlogAdapter) Info(msg string, args ...any)  { a.logger.Info(msg, args...) }
func (a *SlogAdapter) Warn(msg string, args ...any)  { a.logger.Warn(msg, args...) }
func (a *SlogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }

// With returns an adapter that adds args to every entry.
func (a *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.With(args...)}
}
