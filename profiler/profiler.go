// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package profiler provides CPU timing spans for per-frame work.
package profiler

import (
	"sync"
	"time"
)

type ProfilerGroup interface {
	Start(label string) ProfilerGroup
	End()
}

// Nop returns a profiler that discards all spans.
func Nop() ProfilerGroup {
	return nopGroup{}
}

type nopGroup struct{}

func (nopGroup) Start(label string) ProfilerGroup { return nopGroup{} }
func (nopGroup) End()                             {}

// Span is one completed timing span.
type Span struct {
	Label    string
	Start    time.Time
	Duration time.Duration
}

// Recorder collects spans in memory. It is safe for concurrent use, though
// the engine itself only profiles from a single goroutine.
type Recorder struct {
	mu    sync.Mutex
	spans []Span
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Start(label string) ProfilerGroup {
	return &recorderSpan{rec: r, label: label, start: time.Now()}
}

// End on the recorder itself is a no-op; only spans started from it record.
func (r *Recorder) End() {}

// Spans returns all recorded spans and clears the recorder.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.spans
	r.spans = nil
	return out
}

type recorderSpan struct {
	rec   *Recorder
	label string
	start time.Time
}

func (s *recorderSpan) Start(label string) ProfilerGroup {
	return &recorderSpan{rec: s.rec, label: s.label + "/" + label, start: time.Now()}
}

func (s *recorderSpan) End() {
	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()
	s.rec.spans = append(s.rec.spans, Span{
		Label:    s.label,
		Start:    s.start,
		Duration: time.Since(s.start),
	})
}
