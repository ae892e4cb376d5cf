// Package goroutine runs fire-and-forget side effects off the request path.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/folio-hq/folio/internal/shared/logger"
)

// Go runs fn on its own goroutine. A panic inside fn is logged with its stack
// and swallowed.
func Go(log logger.Interface, task string, fn func()) {
	go func() {
		defer Recover(log, task)
		fn()
	}()
}

// Recover logs a recovered panic. It only works when deferred directly.
func Recover(log logger.Interface, task string) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("background task panicked",
		"task", task,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}
