// Package goroutine runs background work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/orris-inc/warden/internal/shared/logger"
)

// Go runs fn on a new goroutine. The returned channel receives fn's error,
// or an error describing a recovered panic, and is closed when fn returns.
// A nil result is not sent.
func Go(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				done <- fmt.Errorf("%s panicked: %v", name, r)
			}
		}()

		if err := fn(); err != nil {
			done <- err
		}
	}()

	return done
}
