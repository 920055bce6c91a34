package marketerrors

import "errors"

// Repository-level errors
var (
	ErrJobNotFound       = errors.New("job not found")
	ErrBidNotFound       = errors.New("bid not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrUserNotFound      = errors.New("user not found")
)

// Business rule errors
var (
	ErrValidation       = errors.New("invalid request")
	ErrForbidden        = errors.New("caller not permitted")
	ErrConflict         = errors.New("operation conflicts with current state")
	ErrDuplicateBid     = errors.New("provider already has a live bid on this job")
	ErrJobNotBiddable   = errors.New("job is no longer accepting bids")
	ErrBidNotPending    = errors.New("bid is not pending")
	ErrAlreadyFunded    = errors.New("escrow already funded for this project")
	ErrAlreadyReleased  = errors.New("milestone payment already released")
	ErrNothingRemaining = errors.New("no remaining amount to release")
	ErrEscrowExceeded   = errors.New("release would exceed the agreed amount")
)

// Gateway errors
var (
	ErrGateway = errors.New("payment gateway error")
)
