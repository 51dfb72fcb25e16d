package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/unkn0wn-root/filecache"
)

func TestLogrusLoggerForwardsFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base)}

	l.Debug("skipped malformed record", filecache.Fields{"index": 3})

	e := hook.LastEntry()
	if e == nil || e.Message != "skipped malformed record" || e.Level != logrus.DebugLevel {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Data["index"] != 3 {
		t.Fatalf("data=%v", e.Data)
	}
}

func TestLogrusLoggerRespectsLevel(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.WarnLevel)
	l := LogrusLogger{E: logrus.NewEntry(base)}

	l.Info("hidden", filecache.Fields{"k": "v"})
	if n := len(hook.AllEntries()); n != 0 {
		t.Fatalf("entries=%d", n)
	}
	l.Warn("shown", nil)
	if e := hook.LastEntry(); e == nil || e.Level != logrus.WarnLevel || len(e.Data) != 0 {
		t.Fatalf("unexpected entry: %+v", e)
	}
}
