package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrCourseNotFound     = errors.New("course not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrQuizNotFound       = errors.New("quiz not found")

	// ErrInvalidIdentifier rejects empty or malformed course/module/lesson
	// identifiers on progress write paths before anything touches storage.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
