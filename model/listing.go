package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing is an immutable snapshot of a marketplace item as returned by
// the backend. Price and CreatedAt are kept as the wire text so a
// malformed value never breaks decoding; use PriceDecimal and
// CreatedTime for arithmetic and ordering.
type Listing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	OwnerID     string `json:"user_id"`
	Nickname    string `json:"nickname,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// PriceDecimal parses the listing price with decimal precision.
// A malformed price degrades to zero; the original text stays in Price
// for display.
func (l Listing) PriceDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(l.Price)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CreatedTime parses the creation timestamp. Missing or invalid
// timestamps collapse to the zero time so they order before any real one.
func (l Listing) CreatedTime() time.Time {
	if l.CreatedAt == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, l.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SellerName returns the seller nickname, defaulting to "Anonymous".
func (l Listing) SellerName() string {
	if l.Nickname == "" {
		return "Anonymous"
	}
	return l.Nickname
}
