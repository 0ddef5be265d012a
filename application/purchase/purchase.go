package purchase

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/solmarket/marketplace-client/constant"
	"github.com/solmarket/marketplace-client/model"
	"github.com/solmarket/marketplace-client/repository/api"
	purchaserepo "github.com/solmarket/marketplace-client/repository/purchase"
	"github.com/solmarket/marketplace-client/ui"
	utilscontext "github.com/solmarket/marketplace-client/utils/context"
	"github.com/solmarket/marketplace-client/utils/errors"
	"github.com/solmarket/marketplace-client/utils/logger"
	"go.uber.org/zap"
)

const successMessage = "Purchase completed successfully!"

type PurchaseApp interface {
	// Buy runs one purchase attempt for the listing: precondition
	// gates, user confirmation, a single submit, outcome notification.
	// The acting identity comes from the session on the context.
	Buy(ctx context.Context, listing model.Listing) (*model.PurchaseAttempt, error)
	// OnPurchased registers the post-purchase refresh callback,
	// invoked after every successful submit.
	OnPurchased(fn func(ctx context.Context))
}

type purchaseAppImpl struct {
	purchaseRepo purchaserepo.PurchaseRepository
	notifier     ui.Notifier
	confirmer    ui.Confirmer

	mu          sync.Mutex
	inFlight    map[string]struct{}
	onPurchased func(ctx context.Context)
}

func NewPurchaseApp(purchaseRepo purchaserepo.PurchaseRepository, notifier ui.Notifier, confirmer ui.Confirmer) PurchaseApp {
	return &purchaseAppImpl{
		purchaseRepo: purchaseRepo,
		notifier:     notifier,
		confirmer:    confirmer,
		inFlight:     make(map[string]struct{}),
	}
}

func (s *purchaseAppImpl) OnPurchased(fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPurchased = fn
}

func (s *purchaseAppImpl) Buy(ctx context.Context, listing model.Listing) (*model.PurchaseAttempt, error) {
	attempt := &model.PurchaseAttempt{
		ID:      uuid.NewString(),
		Listing: listing,
		State:   constant.PurchaseIdle,
	}

	// Gate 1: a session must be present. No prompt is shown.
	session, ok := utilscontext.GetSession(ctx)
	if !ok || !session.Authenticated() {
		attempt.State = constant.PurchaseFailed
		s.notifier.Notify(ctx, constant.ErrorTypeMessage[constant.ErrAuthRequired], ui.KindError)
		return attempt, errors.SetCustomError(constant.ErrAuthRequired)
	}
	attempt.BuyerID = session.User.ID

	// Gate 2: owners cannot buy their own listing. No prompt is shown.
	if session.User.ID == listing.OwnerID {
		attempt.State = constant.PurchaseFailed
		s.notifier.Notify(ctx, constant.ErrorTypeMessage[constant.ErrSelfPurchase], ui.KindError)
		return attempt, errors.SetCustomError(constant.ErrSelfPurchase)
	}

	// A buy for a listing that is already submitting is ignored: no
	// prompt, no second request, no notification.
	if !s.markInFlight(listing.ID) {
		logger.Debug("[Buy] duplicate buy ignored", zap.String("listing_id", listing.ID))
		return attempt, nil
	}
	defer s.unmarkInFlight(listing.ID)

	attempt.State = constant.PurchaseAwaitingConfirmation
	title := fmt.Sprintf("Purchase %q for %s SOL?", listing.Title, listing.Price)
	message := fmt.Sprintf("This will transfer %s SOL from your wallet to the seller.", listing.Price)
	if !s.confirmer.Confirm(ctx, title, message) {
		attempt.State = constant.PurchaseCancelled
		return attempt, nil
	}

	attempt.State = constant.PurchaseSubmitting
	if err := s.purchaseRepo.Submit(ctx, listing.ID); err != nil {
		cause := submitCause(err)
		logger.Error("[Buy] error purchaseRepo.Submit",
			zap.String("listing_id", listing.ID),
			zap.String("cause", constant.ErrorTypeMessage[cause]),
			zap.String("error", err.Error()))
		attempt.State = constant.PurchaseFailed
		s.notifier.Notify(ctx, constant.ErrorTypeMessage[constant.ErrPurchaseFailed], ui.KindError)
		return attempt, errors.SetCustomError(constant.ErrPurchaseFailed)
	}

	attempt.State = constant.PurchaseSucceeded
	s.notifier.Notify(ctx, successMessage, ui.KindSuccess)

	s.mu.Lock()
	refresh := s.onPurchased
	s.mu.Unlock()
	if refresh != nil {
		refresh(ctx)
	}

	return attempt, nil
}

// submitCause classifies a rejected submit for the log line. The user
// always sees the generic failure message regardless of cause.
func submitCause(err error) constant.ErrorType {
	var apiErr *api.APIError
	if !stderrors.As(err, &apiErr) {
		return constant.ErrPurchaseFailed
	}
	switch {
	case apiErr.Status == http.StatusConflict:
		return constant.ErrListingUnavailable
	case strings.Contains(apiErr.Message, "insufficient"):
		return constant.ErrInsufficientBalance
	}
	return constant.ErrPurchaseFailed
}

// markInFlight records a submitting listing. It reports false when a
// purchase for the same listing is already in flight.
func (s *purchaseAppImpl) markInFlight(listingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.inFlight[listingID]; exists {
		return false
	}
	s.inFlight[listingID] = struct{}{}
	return true
}

func (s *purchaseAppImpl) unmarkInFlight(listingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, listingID)
}
