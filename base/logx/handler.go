// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// prefixed with the record level colored for the terminal,
// and filtered by [UserLevel].
type Handler struct {
	out   *termenv.Output
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Any output options are passed to [termenv.NewOutput]; with none,
// the color profile is detected from the environment.
func NewHandler(w io.Writer, opts ...termenv.OutputOption) *Handler {
	return &Handler{out: termenv.NewOutput(w, opts...), mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(level slog.Level) termenv.ANSIColor {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.out.String(r.Level.String()).Foreground(LevelColor(r.Level)).Bold().String())
	b.WriteString(": ")
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	nh.group = name
	return &nh
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Any())
}
