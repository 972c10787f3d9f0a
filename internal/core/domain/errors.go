package domain

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrMissingJoiningDate = errors.New("date of joining is required")
	ErrMailNotConfigured  = errors.New("mail credentials are not configured")
	ErrSendInProgress     = errors.New("offer letter send already in progress")
	ErrStoreUnavailable   = errors.New("datastore unavailable")
)
