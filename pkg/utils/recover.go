package utils

import (
	"errors"
	"fmt"
)

var ErrRecoveredPanic = errors.New("panic recovered")

// Recover embrulha um job de goroutine: um panic vira erro em vez de derrubar o processo
func Recover(job func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrRecoveredPanic, r)
			}
		}()
		return job()
	}
}
