//go:build go1.21

package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/unkn0wn-root/digitize"
)

var _ digitize.Logger = Logger{}

// Logger adapts a *slog.Logger to digitize.Logger.
type Logger struct{ L *stdslog.Logger }

func (s Logger) Debug(msg string, f digitize.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f digitize.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f digitize.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f digitize.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(level stdslog.Level, msg string, f digitize.Fields) {
	s.L.LogAttrs(context.Background(), level, msg, attrs(f)...)
}

func attrs(f digitize.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, stdslog.Any(k, v))
	}
	return out
}
