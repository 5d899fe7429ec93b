package repository

import "errors"

// ErrNotFound is returned by every store implementation when a lookup misses.
var ErrNotFound = errors.New("record not found")

// QuestionFilter narrows FindAll. Empty fields match everything.
type QuestionFilter struct {
	Category   string
	Difficulty string
}
