// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// log.go is the search's telemetry sink. The Logger interface is the
// teacher's own shape (BeginSearch/EndSearch/PrintPV); the default
// implementation wraps op/go-logging instead of the standard log package
// so depth/score/nodes/PV lines get leveled, structured output.
package engine

import (
	"os"
	"strings"

	logging "github.com/op/go-logging"
)

// Stats summarizes one completed (or aborted) iterative-deepening depth.
type Stats struct {
	Depth   int32
	Score   int32
	Nodes   uint64
	NPS     uint64
	TTHits  uint64
	TTProbe uint64
	PV      []Move
}

// Logger receives search telemetry. NulLogger discards everything; OpLogger
// forwards to an op/go-logging backend.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats)
}

// NulLogger implements Logger by discarding every call -- the default for
// tests and for embedding the engine silently.
type NulLogger struct{}

func (NulLogger) BeginSearch()       {}
func (NulLogger) EndSearch()         {}
func (NulLogger) PrintPV(Stats)      {}

// OpLogger is the default Logger, built on op/go-logging. PV lines are
// logged at DEBUG, search start/stop at INFO.
type OpLogger struct {
	log *logging.Logger
}

// NewOpLogger builds an OpLogger with a console backend writing to stderr,
// using an "info string "-prefixed format so the thin driver can relay
// these lines as UCI info output by stripping the level field.
func NewOpLogger(module string) *OpLogger {
	log := logging.MustGetLogger(module)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`info string %{level:.4s} %{message}`)
	formatted := logging.NewBackendFormatter(backend, format)
	logging.SetBackend(formatted)
	return &OpLogger{log: log}
}

func (l *OpLogger) BeginSearch() { l.log.Info("search started") }
func (l *OpLogger) EndSearch()   { l.log.Info("search stopped") }

func (l *OpLogger) PrintPV(s Stats) {
	pv := make([]string, len(s.PV))
	for i, m := range s.PV {
		pv[i] = m.UCI()
	}
	l.log.Debugf("depth %d score %d nodes %d nps %d tthits %d/%d pv %s",
		s.Depth, s.Score, s.Nodes, s.NPS, s.TTHits, s.TTProbe, strings.Join(pv, " "))
}
