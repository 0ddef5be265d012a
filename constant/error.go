package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrAuthRequired
	ErrSelfPurchase
	ErrQueryFailed
	ErrPurchaseFailed
	ErrValidation
	ErrInsufficientBalance
	ErrListingUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrAuthRequired:        "please sign in to make a purchase",
	ErrSelfPurchase:        "you cannot buy your own listing",
	ErrQueryFailed:         "failed to load listings",
	ErrPurchaseFailed:      "purchase failed, please try again",
	ErrValidation:          "validation failed",
	ErrInsufficientBalance: "insufficient balance",
	ErrListingUnavailable:  "listing is no longer available",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrAuthRequired:        http.StatusUnauthorized,
	ErrSelfPurchase:        http.StatusForbidden,
	ErrQueryFailed:         http.StatusBadGateway,
	ErrPurchaseFailed:      http.StatusBadGateway,
	ErrValidation:          http.StatusBadRequest,
	ErrInsufficientBalance: http.StatusBadRequest,
	ErrListingUnavailable:  http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrAuthRequired:        "0004",
	ErrSelfPurchase:        "0005",
	ErrQueryFailed:         "0006",
	ErrPurchaseFailed:      "0007",
	ErrValidation:          "0008",
	ErrInsufficientBalance: "0009",
	ErrListingUnavailable:  "0010",
}
