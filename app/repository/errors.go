package repository

import "errors"

var (
	// ErrDuplicateDeal is returned when an active deal already exists
	// for the configured uniqueness key (see DEAL_UNIQUENESS).
	ErrDuplicateDeal = errors.New("an active deal already exists between these parties")

	// ErrConcurrentModification is returned when the deal changed
	// between validation and commit. Safe for the caller to retry once
	// after re-fetching; the repository itself never retries.
	ErrConcurrentModification = errors.New("deal was modified concurrently")

	// ErrConversationDealLinked is returned when trying to bind a deal
	// to a conversation that already has one. The link is set at most
	// once and never changed.
	ErrConversationDealLinked = errors.New("conversation is already linked to a deal")
)
