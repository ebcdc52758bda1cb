package services

import "errors"

var (
	// ErrEpicNotFound is returned when the requested epic does not exist.
	ErrEpicNotFound = errors.New("epic not found")
	// ErrEpicUnavailable is returned when the epic exists but is not published.
	ErrEpicUnavailable = errors.New("epic is not available")
	// ErrBlockNotFound is returned when a quiz block does not exist or is disabled.
	ErrBlockNotFound = errors.New("quiz block not found")
	// ErrInsufficientQuestions is returned when the filtered pool cannot fill
	// a minimum viable package.
	ErrInsufficientQuestions = errors.New("not enough questions for this selection")
	// ErrEmptySubmission is returned when a submission carries no answers.
	ErrEmptySubmission = errors.New("submission contains no answers")
)
