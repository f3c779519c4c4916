package domain

import "errors"

// Worker errors
var (
	ErrWorkerNotFound     = errors.New("worker not found")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrWorkerHasRequests  = errors.New("worker has requests and cannot be deleted")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Request lifecycle errors
var (
	ErrRequestNotFound     = errors.New("request not found")
	ErrInvalidRequestType  = errors.New("invalid request type")
	ErrInvalidShift        = errors.New("invalid shift")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrAdminMultiDay       = errors.New("administrative leave can only cover a single day")
	ErrReasonRequired      = errors.New("a reason is required for administrative leave")
	ErrReasonNotInCatalog  = errors.New("the selected reason is not in the catalog")
	ErrAdvanceNotice       = errors.New("administrative leave requires at least 1 business day of notice")
	ErrMultiDayNotFull     = errors.New("multi-day requests must use the full shift")
	ErrInsufficientDays    = errors.New("not enough leave days available")
	ErrAlreadyDecided      = errors.New("request has already been decided")
	ErrReceiptNotApproved  = errors.New("receipts are only available for approved requests")
	ErrReceiptNoApprover   = errors.New("request has no approver on record")
	ErrEndBeforeStart      = errors.New("end date is before start date")
)
