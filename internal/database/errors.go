package database

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound indicates the referenced user or room does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail indicates an account with the email already exists.
	ErrDuplicateEmail = errors.New("duplicate email")
)

const uniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
