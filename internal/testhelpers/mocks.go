// Package testhelpers provides shared test utilities for the classifier
// service.
package testhelpers

import (
	"sync"

	"github.com/niticheck/classifier/internal/logger"
)

// LogEntry is one captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []logger.Field
}

// MockLogger implements logger.Logger and records every call. Safe for
// concurrent use.
type MockLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewMockLogger creates a capturing logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []logger.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields ...logger.Field) { m.record("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...logger.Field)  { m.record("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...logger.Field)  { m.record("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...logger.Field) { m.record("error", msg, fields) }

// With returns the same logger; captured entries stay shared.
func (m *MockLogger) With(_ ...logger.Field) logger.Logger { return m }

// Sync is a no-op.
func (m *MockLogger) Sync() error { return nil }

// Entries returns a copy of all captured entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HasMessage reports whether any entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}
