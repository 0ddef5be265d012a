package model

import "time"

// User is the account identity as served by the backend.
type User struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Nickname      string  `json:"nickname"`
	WalletAddress string  `json:"wallet_address,omitempty"`
	Balance       float64 `json:"balance"`
}

// Session is the persisted identity plus bearer token. It is injected
// read-only into the application layers; its absence gates the purchase
// workflow and the profile/wallet views.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Authenticated reports whether a bearer token is present.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Transaction is a settled balance transfer shown in the wallet view.
type Transaction struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	TxHash    string    `json:"tx_hash"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnedToken is a purchased listing shown under "My Tokens".
type OwnedToken struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

// UserNotification is a backend-stored notification entry.
type UserNotification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletView is the GET /wallet/{userId} response.
type WalletView struct {
	User          User               `json:"user"`
	Transactions  []Transaction      `json:"transactions"`
	Tokens        []OwnedToken       `json:"tokens"`
	Notifications []UserNotification `json:"notifications"`
}

// ProfileUpdateRequest is the PUT /profile payload. The password rule is
// advisory on the client; the server re-validates.
type ProfileUpdateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password,omitempty" validate:"omitempty,strongpassword"`
}

// ProfileUpdateResponse wraps the refreshed user returned by PUT /profile.
type ProfileUpdateResponse struct {
	User User `json:"user"`
}
