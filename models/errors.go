package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var ErrUnknownUser = errors.Wrap(NotFoundError, "unknown user")

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Case transfer workflow errors
var (
	ErrTransferNotPending = errors.Wrap(BadParameterError,
		"case transfer is not pending")
	ErrPendingTransferExists = errors.Wrap(ConflictError,
		"a pending transfer already exists for this case")
	ErrTransferTargetNotLawyer = errors.Wrap(BadParameterError,
		"transfer target is not an active lawyer")
	ErrTransferToSelf = errors.Wrap(BadParameterError,
		"cannot transfer a case to its current lawyer")
)

// Document workflow errors
var ErrDocumentNotPending = errors.Wrap(BadParameterError,
	"document has already been reviewed")

// Bulk operation errors
var ErrEmptyBatch = errors.Wrap(BadParameterError, "bulk operation has no targets")

// AI assistant errors
var ErrAssistantUnavailable = errors.New("assistant provider is unavailable")
