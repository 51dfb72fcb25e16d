// Package zap adapts a *zap.Logger to filecache.Logger.
package zap

import (
	"slices"

	"github.com/unkn0wn-root/filecache"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ filecache.Logger = ZapLogger{}

// ZapLogger forwards to L. A nil L discards everything.
type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f filecache.Fields) { z.log(zapcore.DebugLevel, msg, f) }
func (z ZapLogger) Info(msg string, f filecache.Fields)  { z.log(zapcore.InfoLevel, msg, f) }
func (z ZapLogger) Warn(msg string, f filecache.Fields)  { z.log(zapcore.WarnLevel, msg, f) }
func (z ZapLogger) Error(msg string, f filecache.Fields) { z.log(zapcore.ErrorLevel, msg, f) }

func (z ZapLogger) log(lvl zapcore.Level, msg string, f filecache.Fields) {
	if z.L == nil {
		return
	}
	// fields are only built when the entry will be written
	if ce := z.L.Check(lvl, msg); ce != nil {
		ce.Write(zf(f)...)
	}
}

// zf converts f in key order so console output is stable.
func zf(f filecache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
