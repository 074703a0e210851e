package dealflow

import "errors"

// Validation errors surfaced unmodified to the caller; they represent
// business-rule violations the caller must correct, never retried.
var (
	// ErrDealNotActive is returned when the deal's status already
	// forbids any further stage progress.
	ErrDealNotActive = errors.New("deal is not active")

	// ErrUnauthorizedTransition is returned when the acting user is not
	// a party to the deal, or is not the party whose turn it is.
	ErrUnauthorizedTransition = errors.New("actor is not authorized for this transition")

	// ErrInvalidStageTransition is returned when the target stage is
	// not reachable from the current stage.
	ErrInvalidStageTransition = errors.New("invalid stage transition")

	// ErrSignaturesMissing is returned when signing is left before both
	// parties have signed the agreement.
	ErrSignaturesMissing = errors.New("both signatures are required before leaving signing")
)
