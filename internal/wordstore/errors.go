package wordstore

import "errors"

var (
	// ErrListNotFound is returned when no store has the requested list.
	ErrListNotFound = errors.New("word list not found")

	// ErrEmptyList is returned when a list would contain no words.
	ErrEmptyList = errors.New("word list is empty")

	// ErrInvalidListName is returned for list names that are empty or contain whitespace.
	ErrInvalidListName = errors.New("invalid word list name")
)
