package http

import "errors"

var (
	ErrInvalidRequestBody = errors.New("invalid request body")
	ErrInvalidUserID      = errors.New("invalid user id")
)
