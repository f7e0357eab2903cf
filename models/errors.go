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

// DB related errors
var (
	ErrIgnoreRollBackError = errors.New("ignore rollback error")
)

// Evaluation related errors
var (
	// The lead exists but never submitted an intake: distinct from NotFoundError
	// so the caller can tell "wrong id" from "not ready to evaluate".
	ErrLeadHasNoIntake = errors.Wrap(BadParameterError,
		"lead has no intake submission yet")

	ErrPanicInAppetiteEvaluation = errors.New("panic during appetite evaluation")
)

// Appetite rule lifecycle errors
var (
	ErrRuleBoundsIncoherent = errors.Wrap(BadParameterError,
		"appetite rule minimum bound is greater than its maximum bound")
)
