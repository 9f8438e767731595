package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrMaterialNotFound = errors.New("material not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrInvalidLogin     = errors.New("incorrect email or password")
	ErrPermissionDenied = errors.New("permission denied")
)
