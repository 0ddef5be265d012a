package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/solmarket/marketplace-client/model"
	"github.com/solmarket/marketplace-client/utils/logger"
	validatorx "github.com/solmarket/marketplace-client/utils/validator"
	"go.uber.org/zap"
)

var (
	errNotFound     = errors.New("not found")
	errListingSold  = errors.New("listing already sold")
	errOwnListing   = errors.New("cannot buy your own listing")
	errInsufficient = errors.New("insufficient balance")
	errUnauthorized = errors.New("unauthorized")
)

type server struct {
	store     *store
	jwtSecret []byte
	tokenTTL  time.Duration
}

func newRouter(s *server) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/listings", s.handleListings).Methods(http.MethodGet)
	r.HandleFunc("/purchase", s.authenticated(s.handlePurchase)).Methods(http.MethodPost)
	r.HandleFunc("/wallet/{userId}", s.handleWallet).Methods(http.MethodGet)
	r.HandleFunc("/profile", s.authenticated(s.handleProfile)).Methods(http.MethodPut)

	r.Use(loggingMiddleware())
	return r
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := s.store.authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user, "token": token})
}

func (s *server) handleListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	listings := s.store.searchListings(q.Get("q"), q.Get("minPrice"), q.Get("maxPrice"))
	writeJSON(w, http.StatusOK, listings)
}

func (s *server) handlePurchase(w http.ResponseWriter, r *http.Request, userID string) {
	var req model.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ListingID == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := s.store.purchase(userID, req.ListingID); err != nil {
		switch {
		case errors.Is(err, errNotFound):
			writeError(w, http.StatusNotFound, "listing not found")
		case errors.Is(err, errListingSold):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, errOwnListing):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, errInsufficient):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "purchase failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}

func (s *server) handleWallet(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	view, err := s.store.walletView(userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *server) handleProfile(w http.ResponseWriter, r *http.Request, userID string) {
	var req model.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	// The client-side password check is advisory; this is the
	// authoritative validation.
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "weak password or invalid profile fields")
		return
	}

	user, err := s.store.updateProfile(userID, &req)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, model.ProfileUpdateResponse{User: *user})
}

// authenticated validates the bearer token and hands the subject to the
// wrapped handler.
func (s *server) authenticated(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), claims, func(*jwt.Token) (interface{}, error) {
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next(w, r, claims.Subject)
	}
}

func (s *server) issueToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func loggingMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			logger.Info(
				"HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// containsFold reports a case-insensitive substring match.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
