package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/solmarket/marketplace-client/model"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	user         model.User
	passwordHash string
	balance      decimal.Decimal
	transactions []model.Transaction
	tokens       []model.OwnedToken
	notes        []model.UserNotification
}

type storedListing struct {
	listing model.Listing
	sold    bool
}

// store is the in-memory marketplace state. One mutex guards everything;
// a purchase is a single critical section, so the transfer is atomic
// from any client's point of view.
type store struct {
	mu       sync.Mutex
	accounts map[string]*account
	listings []*storedListing
}

func newStore() *store {
	s := &store{accounts: make(map[string]*account)}
	s.seed()
	return s
}

func (s *store) seed() {
	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(h)
	}

	s.accounts["u1"] = &account{
		user: model.User{
			ID: "u1", Email: "alice@example.com", Nickname: "alice",
			WalletAddress: "9x4FqLpZsA1nB7cD2eF8gH3jK5mN6pQ7rS8tU9vW1yZ2",
		},
		passwordHash: hash("Alice#2024pw"),
		balance:      decimal.RequireFromString("120.50"),
	}
	s.accounts["u2"] = &account{
		user: model.User{
			ID: "u2", Email: "bob@example.com", Nickname: "bob",
			WalletAddress: "3aB5cD7eF9gH1jK3mN5pQ7rS9tU1vW3yZ5xC7vB9nM1k",
		},
		passwordHash: hash("Bob#2024pass"),
		balance:      decimal.RequireFromString("42.00"),
	}

	now := time.Now().UTC()
	seedListings := []model.Listing{
		{ID: "l1", Title: "iPhone 14 Pro", Description: "Electronics in great condition", Price: "3.20", OwnerID: "u1", Nickname: "alice", CreatedAt: now.Add(-48 * time.Hour).Format(time.RFC3339)},
		{ID: "l2", Title: "Toyota Camry 2019", Description: "Vehicles, one owner", Price: "95.00", OwnerID: "u1", Nickname: "alice", CreatedAt: now.Add(-24 * time.Hour).Format(time.RFC3339)},
		{ID: "l3", Title: "Downtown apartment", Description: "Real Estate, two rooms", Price: "410.00", OwnerID: "u2", Nickname: "bob", CreatedAt: now.Add(-12 * time.Hour).Format(time.RFC3339)},
		{ID: "l4", Title: "Leather jacket", Description: "Fashion, barely worn", Price: "0.80", OwnerID: "u2", Nickname: "bob", CreatedAt: now.Add(-1 * time.Hour).Format(time.RFC3339)},
	}
	for i := range seedListings {
		s.listings = append(s.listings, &storedListing{listing: seedListings[i]})
	}
}

// searchListings applies the server-side criteria: free-text substring
// on title/description and an inclusive decimal price range. An
// inverted range simply matches nothing.
func (s *store) searchListings(q, minPrice, maxPrice string) []model.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	var min, max *decimal.Decimal
	if d, err := decimal.NewFromString(minPrice); err == nil && minPrice != "" {
		min = &d
	}
	if d, err := decimal.NewFromString(maxPrice); err == nil && maxPrice != "" {
		max = &d
	}

	results := make([]model.Listing, 0, len(s.listings))
	for _, sl := range s.listings {
		if sl.sold {
			continue
		}
		l := sl.listing
		if q != "" && !containsFold(l.Title, q) && !containsFold(l.Description, q) {
			continue
		}
		price := l.PriceDecimal()
		if min != nil && price.LessThan(*min) {
			continue
		}
		if max != nil && price.GreaterThan(*max) {
			continue
		}
		results = append(results, l)
	}
	return results
}

// purchase transfers the listing price from buyer to seller and marks
// the listing sold.
func (s *store) purchase(buyerID, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *storedListing
	for _, sl := range s.listings {
		if sl.listing.ID == listingID {
			target = sl
			break
		}
	}
	if target == nil {
		return errNotFound
	}
	if target.sold {
		return errListingSold
	}
	if target.listing.OwnerID == buyerID {
		return errOwnListing
	}

	buyer, ok := s.accounts[buyerID]
	if !ok {
		return errNotFound
	}
	seller, ok := s.accounts[target.listing.OwnerID]
	if !ok {
		return errNotFound
	}

	price := target.listing.PriceDecimal()
	if buyer.balance.LessThan(price) {
		return errInsufficient
	}

	buyer.balance = buyer.balance.Sub(price)
	seller.balance = seller.balance.Add(price)
	target.sold = true

	now := time.Now().UTC()
	txHash := uuid.NewString()
	buyer.transactions = append(buyer.transactions, model.Transaction{
		ID: uuid.NewString(), Amount: target.listing.Price, TxHash: txHash, CreatedAt: now,
	})
	seller.transactions = append(seller.transactions, model.Transaction{
		ID: uuid.NewString(), Amount: target.listing.Price, TxHash: txHash, CreatedAt: now,
	})
	buyer.tokens = append(buyer.tokens, model.OwnedToken{
		ID: target.listing.ID, Title: target.listing.Title, Price: target.listing.Price,
	})
	seller.notes = append(seller.notes, model.UserNotification{
		ID:        uuid.NewString(),
		Message:   fmt.Sprintf("Your listing %q sold for %s SOL", target.listing.Title, target.listing.Price),
		CreatedAt: now,
	})
	return nil
}

func (s *store) walletView(userID string) (*model.WalletView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return nil, errNotFound
	}

	user := acc.user
	user.Balance, _ = acc.balance.Float64()
	return &model.WalletView{
		User:          user,
		Transactions:  append([]model.Transaction{}, acc.transactions...),
		Tokens:        append([]model.OwnedToken{}, acc.tokens...),
		Notifications: append([]model.UserNotification{}, acc.notes...),
	}, nil
}

func (s *store) updateProfile(userID string, req *model.ProfileUpdateRequest) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return nil, errNotFound
	}

	acc.user.Email = req.Email
	acc.user.Nickname = req.Nickname
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		acc.passwordHash = string(h)
	}

	user := acc.user
	user.Balance, _ = acc.balance.Float64()
	return &user, nil
}

func (s *store) authenticate(email, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.user.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)); err != nil {
			return nil, errUnauthorized
		}
		user := acc.user
		user.Balance, _ = acc.balance.Float64()
		return &user, nil
	}
	return nil, errUnauthorized
}
