package models

import "net/http"

// ErrorNotFound is returned when a referenced row does not exist.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string   { return e.Message }
func (e ErrorNotFound) StatusCode() int { return http.StatusNotFound }

// ErrorConflict covers unique-key clashes and deletes blocked by references.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string   { return e.Message }
func (e ErrorConflict) StatusCode() int { return http.StatusConflict }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string   { return e.Message }
func (e ErrorUnauthorized) StatusCode() int { return http.StatusUnauthorized }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string   { return e.Message }
func (e ErrorForbidden) StatusCode() int { return http.StatusForbidden }

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string   { return e.Message }
func (e ErrorValidation) StatusCode() int { return http.StatusBadRequest }

// ErrorInternalServer wraps a storage failure.
type ErrorInternalServer struct {
	Err error
}

func (e ErrorInternalServer) Error() string   { return "storage error: " + e.Err.Error() }
func (e ErrorInternalServer) Unwrap() error   { return e.Err }
func (e ErrorInternalServer) StatusCode() int { return http.StatusInternalServerError }

var (
	ErrEmailInUse         = ErrorConflict{Message: "email already registered"}
	ErrInvalidCredentials = ErrorUnauthorized{Message: "invalid email or password"}
	ErrLoginRequired      = ErrorUnauthorized{Message: "login required"}
	ErrForbidden          = ErrorForbidden{Message: "moderator access required"}
	ErrSelfDeletion       = ErrorForbidden{Message: "moderators cannot delete their own account"}
	ErrPasswordMismatch   = ErrorValidation{Message: "passwords do not match"}
	ErrInvalidScore       = ErrorValidation{Message: "score must be between 1 and 5"}
	ErrEmptyComment       = ErrorValidation{Message: "comment cannot be empty"}
	ErrCommentTooLong     = ErrorValidation{Message: "comments are limited to 1000 characters"}
	ErrMovieReferenced    = ErrorConflict{Message: "movie still has ratings or comments"}
)
