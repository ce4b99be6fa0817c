package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func Test_isUniqueViolation(t *testing.T) {
	tcases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "unique violation",
			err:      &pq.Error{Code: "23505"},
			expected: true,
		},
		{
			name:     "wrapped unique violation",
			err:      fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}),
			expected: true,
		},
		{
			name:     "other pq error",
			err:      &pq.Error{Code: "23503"},
			expected: false,
		},
		{
			name:     "non-pq error",
			err:      errors.New("db error"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isUniqueViolation(tc.err))
		})
	}
}
