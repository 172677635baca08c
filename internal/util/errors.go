package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCollegeNotFound  = errors.New("college not found")
	ErrTeacherNotFound  = errors.New("teacher not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidIDToken   = errors.New("invalid id token")
	ErrGenerationFailed = errors.New("failed to generate test questions")
	ErrAnswerMismatch   = errors.New("answers must match questions")
)
