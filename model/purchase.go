package model

import "github.com/solmarket/marketplace-client/constant"

// PurchaseRequest is the POST /purchase payload.
type PurchaseRequest struct {
	ListingID string `json:"listingId" validate:"required"`
}

// PurchaseAttempt is the ephemeral record of one buy action. It is
// created per buy click and discarded once the outcome is reported.
type PurchaseAttempt struct {
	ID      string
	Listing Listing
	BuyerID string
	State   constant.PurchaseState
}
