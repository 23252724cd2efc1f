package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const tagKey = "tag" // slog attribute used for tag filtering

// debugFilter prints filter decisions to stderr. Enabled by -debug-log.
var debugFilter bool

// SetDebugFilter toggles diagnostic output of the filtering handler.
func SetDebugFilter(on bool) {
	debugFilter = on
}

// filteringHandler drops records that fail the configured tag, package or
// file filters before handing them to the wrapped handler.
type filteringHandler struct {
	base     slog.Handler
	tags     filterSet
	packages filterSet
	files    filterSet
}

func newFilteringHandler(base slog.Handler, cfg Config) *filteringHandler {
	return &filteringHandler{
		base:     base,
		tags:     newFilterSet(cfg.EnabledTags, cfg.DisabledTags),
		packages: newFilterSet(cfg.EnabledPackages, cfg.DisabledPackages),
		files:    newFilterSet(cfg.EnabledFiles, cfg.DisabledFiles),
	}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	pkg, file := recordSource(r)
	tag := ""
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			return false
		}
		return true
	})

	if !h.packages.permits(pkg) || !h.files.permits(file) || !h.tags.permits(tag) {
		if debugFilter {
			fmt.Fprintf(os.Stderr, "[FILTER] dropped %q (pkg=%s file=%s tag=%s)\n", r.Message, pkg, file, tag)
		}
		return nil
	}
	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &filteringHandler{base: h.base.WithAttrs(attrs), tags: h.tags, packages: h.packages, files: h.files}
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{base: h.base.WithGroup(name), tags: h.tags, packages: h.packages, files: h.files}
}

// recordSource returns the package directory and base file name of the
// record's caller, or empty strings when the record has no PC.
func recordSource(r slog.Record) (pkg, file string) {
	if r.PC == 0 {
		return "", ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
	if frame.File == "" {
		return "", ""
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File)
}
