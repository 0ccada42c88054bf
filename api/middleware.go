package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/account"
)

// sessionTTL bounds how long an issued session token stays in the cache
const sessionTTL = 30 * 24 * time.Hour

// Guard wires the operator account store into the session middleware
type Guard struct {
	Accounts *account.Store
	Secret   []byte
}

var authenticator auth.Authenticator
var cache store.Cache

// Middleware gates the dashboard routes behind the session token. Without a
// valid token only the login, signup and forgot-password surface is reachable.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		zap.S().Debugf("session for %s authenticated", user.UserName())
		next.ServeHTTP(w, r)
	})
}

// SetupGoGuardian sets up the go-guardian middleware
func (g Guard) SetupGoGuardian() {
	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), sessionTTL)
	basicStrategy := basic.New(g.validate, cache)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, cache)

	authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// CreateToken logs the operator in: basic auth credentials are checked against
// the local account and a signed session token carrying the identity marker
// (id, display name, email) comes back for the UI to hold.
func (g Guard) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	email, password, ok := r.BasicAuth()
	if !ok {
		http.Error(w, "basic auth failed", http.StatusUnauthorized)
		return
	}

	a, err := g.Accounts.Verify(email, password)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   a.ID,
		"name":  a.Name,
		"email": a.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.Secret)
	if err != nil {
		http.Error(w, "token generation failed", http.StatusInternalServerError)
		return
	}

	authUser := auth.NewDefaultUser(a.Email, a.ID, nil, nil)
	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Append(tokenStrategy, token, authUser, r)

	response := map[string]interface{}{
		"token": token,
		"user":  a,
	}
	responseBody, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	w.Write(responseBody)
}

func (g Guard) validate(ctx context.Context, r *http.Request, email, password string) (auth.Info, error) {
	a, err := g.Accounts.Verify(email, password)
	if err != nil {
		return nil, err
	}
	return auth.NewDefaultUser(a.Email, a.ID, nil, nil), nil
}

// RevokeToken logs the operator out by revoking the session token
func RevokeToken(w http.ResponseWriter, r *http.Request) {
	reqToken := r.Header.Get("Authorization")
	splitToken := strings.Split(reqToken, "Bearer ")
	if len(splitToken) != 2 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "missing bearer token"}`))
		return
	}
	reqToken = splitToken[1]

	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Revoke(tokenStrategy, reqToken, r)
	w.Write([]byte(`{"revoked": true}`))
}
