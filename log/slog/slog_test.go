package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/filecache"
)

func TestLoggerSortsAttrsAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{
		Level: stdslog.LevelInfo,
		ReplaceAttr: func(_ []string, a stdslog.Attr) stdslog.Attr {
			if a.Key == stdslog.TimeKey {
				return stdslog.Attr{}
			}
			return a
		},
	})
	l := Logger{L: stdslog.New(h)}

	l.Debug("hidden", filecache.Fields{"x": 1})
	l.Info("loaded cache file", filecache.Fields{"records": 2, "format": "csv"})

	got := strings.TrimSpace(buf.String())
	want := `level=INFO msg="loaded cache file" format=csv records=2`
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}
