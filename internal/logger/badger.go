package logger

import (
	"strings"

	"go.uber.org/zap"
)

// BadgerLogger adapts a zap logger to badger's printf-style Logger interface.
type BadgerLogger struct {
	s *zap.SugaredLogger
}

// NewBadgerLogger wraps l. A nil logger discards output.
func NewBadgerLogger(l *zap.Logger) *BadgerLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &BadgerLogger{s: l.Named("badger").Sugar()}
}

func (b *BadgerLogger) Errorf(format string, args ...any) {
	b.s.Errorf(trimNewline(format), args...)
}

func (b *BadgerLogger) Warningf(format string, args ...any) {
	b.s.Warnf(trimNewline(format), args...)
}

func (b *BadgerLogger) Infof(format string, args ...any) {
	b.s.Infof(trimNewline(format), args...)
}

func (b *BadgerLogger) Debugf(format string, args ...any) {
	b.s.Debugf(trimNewline(format), args...)
}

// badger terminates most format strings with a newline.
func trimNewline(format string) string {
	return strings.TrimSuffix(format, "\n")
}
