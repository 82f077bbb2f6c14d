package domain

import "errors"

var (
	// ErrQuizNotFound indicates the requested quiz does not exist in the catalog.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrScenarioNotFound indicates the requested scenario walkthrough does not exist.
	ErrScenarioNotFound = errors.New("scenario not found")
	// ErrSessionNotFound is returned when acting on a session that was never
	// started or has already been torn down.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionCompleted is returned for state transitions after completion.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrNoQuestions rejects starting a session with an empty item sequence.
	ErrNoQuestions = errors.New("session requires at least one question")
	// ErrInvalidTimeLimit rejects a negative time budget.
	ErrInvalidTimeLimit = errors.New("time limit must be zero or positive")
	// ErrInvalidOption indicates a selected option index is out of range.
	ErrInvalidOption = errors.New("option index out of range")
	// ErrAnswerRequired is returned when a scenario advances before a reveal.
	ErrAnswerRequired = errors.New("answer the current item first")
	// ErrInvalidNavigation is returned for backward navigation in scenario mode.
	ErrInvalidNavigation = errors.New("navigation not allowed in this mode")
	// ErrUserNotFound indicates an unknown user identifier.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidToken indicates a missing, malformed, or expired auth token.
	ErrInvalidToken = errors.New("invalid auth token")
)
