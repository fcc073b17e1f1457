package legend

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.New(io.Discard))
}

// SetLogger installs l for asset loading messages. The default logger
// discards everything.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger.Store(l)
}

func Logger() *log.Logger {
	return logger.Load()
}
