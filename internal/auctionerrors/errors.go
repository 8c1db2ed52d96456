package auctionerrors

import "errors"

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrCodeTaken       = errors.New("auction code already in use")
)

// Offer validation errors
var (
	ErrInvalidOffer  = errors.New("invalid offer")
	ErrOfferRejected = errors.New("offer rejected by auction rules")
	ErrAuctionClosed = errors.New("auction is closed for offers")
)

// Lifecycle guard errors
var (
	ErrForbidden        = errors.New("actor is not allowed to perform this operation")
	ErrWrongStatus      = errors.New("auction is not in the required status")
	ErrOfferMismatch    = errors.New("offer does not belong to this auction")
	ErrAuctionHasOffers = errors.New("auction received offers and cannot be finalized as deserted")
)
