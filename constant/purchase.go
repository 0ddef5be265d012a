package constant

type PurchaseState int

const (
	PurchaseIdle PurchaseState = iota
	PurchaseAwaitingConfirmation
	PurchaseSubmitting
	PurchaseSucceeded
	PurchaseFailed
	PurchaseCancelled
)

var purchaseStateName = map[PurchaseState]string{
	PurchaseIdle:                 "idle",
	PurchaseAwaitingConfirmation: "awaiting_confirmation",
	PurchaseSubmitting:           "submitting",
	PurchaseSucceeded:            "succeeded",
	PurchaseFailed:               "failed",
	PurchaseCancelled:            "cancelled",
}

func (s PurchaseState) String() string {
	if name, ok := purchaseStateName[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the state ends a purchase attempt.
func (s PurchaseState) Terminal() bool {
	switch s {
	case PurchaseSucceeded, PurchaseFailed, PurchaseCancelled:
		return true
	}
	return false
}
