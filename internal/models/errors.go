package models

import "errors"

var (
	// ErrUnauthenticated is returned when an action needs a logged-in session
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnauthorized is returned when the session lacks the required role or ownership
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyEnlisted signals a repeated enlistment by the same member
	ErrAlreadyEnlisted = errors.New("already enlisted")
	// ErrOperationEnded signals an enlistment attempt on an ended operation
	ErrOperationEnded = errors.New("operation ended")
	// ErrMemberNotFound signals a missing member
	ErrMemberNotFound = errors.New("member not found")
	// ErrSkillNotFound signals a missing skill on a member
	ErrSkillNotFound = errors.New("skill not found")
	// ErrProjectNotFound signals a missing project
	ErrProjectNotFound = errors.New("project not found")
	// ErrSkillExists signals a case-insensitive skill name collision
	ErrSkillExists = errors.New("skill already logged")
	// ErrInvalidArgument signals failed input validation
	ErrInvalidArgument = errors.New("invalid argument")
)
