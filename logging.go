package robdd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discardLogger is the Engine's default logger, silent unless a caller
// opts in with SetLogger. This plays the role of rudd's _LOGLEVEL gate,
// but as an injectable structured logger instead of a build-tag constant.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// SetLogger attaches a logrus logger to the Engine. Build emits one
// Debug-level entry with the live node count through it after each
// successful build; passing nil restores the silent default.
func (e *Engine) SetLogger(l *logrus.Logger) {
	if l == nil {
		l = discardLogger
	}
	e.log = l
}
