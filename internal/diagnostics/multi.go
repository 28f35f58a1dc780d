package diagnostics

import (
	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/ports"
)

// Multi fans records out to several sinks in order
type Multi struct {
	sinks []ports.DiagnosticSink
}

// NewMulti creates a Multi over sinks. Nil sinks are skipped.
func NewMulti(sinks ...ports.DiagnosticSink) *Multi {
	m := &Multi{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Send delivers the record to every sink
func (m *Multi) Send(source string, level domain.Level, message string) {
	for _, s := range m.sinks {
		s.Send(source, level, message)
	}
}
