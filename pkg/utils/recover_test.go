package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	tests := []struct {
		name     string
		job      func() error
		validate func(t *testing.T, err error)
	}{
		{
			name: "sem erro",
			job:  func() error { return nil },
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "erro repassado",
			job:  func() error { return errors.New("falhou") },
			validate: func(t *testing.T, err error) {
				assert.EqualError(t, err, "falhou")
				assert.NotErrorIs(t, err, ErrRecoveredPanic)
			},
		},
		{
			name: "panic vira erro",
			job:  func() error { panic("boom") },
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrRecoveredPanic)
				assert.Contains(t, err.Error(), "boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Recover(tt.job)())
		})
	}
}
