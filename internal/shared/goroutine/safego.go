// Package goroutine launches background work that must not take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine and logs a panic with its stack instead
// of crashing. The returned channel closes once fn has returned or panicked.
func SafeGo(log logger.Interface, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer recoverTo(log.With("goroutine", name))
		fn()
	}()
	return done
}

func recoverTo(log logger.Interface) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	log.Errorw("goroutine panicked", "error", err, "stack", string(debug.Stack()))
}
