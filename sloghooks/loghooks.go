package sloghooks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/unkn0wn-root/filecache"
)

type Options struct {
	// Sampling of RecordSkipped to avoid floods on badly damaged files; 0/1 = log all.
	SkipEvery uint64
	// Optional path redactor. Defaults to the base name plus a SHA-256 prefix of the full path.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	skipCtr atomic.Uint64
}

var _ filecache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(p string) string {
	if p == "" {
		return ""
	}
	if h.opts.Redact != nil {
		return h.opts.Redact(p)
	}
	sum := sha256.Sum256([]byte(p))
	return filepath.Base(p) + "#" + hex.EncodeToString(sum[:4])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) RecordSkipped(format filecache.Format, index int) {
	if h.l == nil || !sample(h.opts.SkipEvery, &h.skipCtr) {
		return
	}
	h.l.Warn("filecache.record_skipped",
		"format", format.String(),
		"index", index)
}

func (h *Hooks) Saved(path string, format filecache.Format, records, size int) {
	if h.l == nil {
		return
	}
	h.l.Info("filecache.saved",
		"file", h.redact(path),
		"format", format.String(),
		"records", records,
		"bytes", size)
}

func (h *Hooks) Loaded(path string, format filecache.Format, records, skipped int) {
	if h.l == nil {
		return
	}
	level := slog.LevelInfo
	if skipped > 0 {
		level = slog.LevelWarn
	}
	h.l.Log(context.Background(), level, "filecache.loaded",
		"file", h.redact(path),
		"format", format.String(),
		"records", records,
		"skipped", skipped)
}
