package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/account"
	"github.com/drivewise/fleet-api/config"
)

// Account exported for testing purposes
type Account struct {
	DB *account.Store
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotRequest struct {
	Email string `json:"email"`
}

type resetRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// SignupHandler creates the operator account
func (a Account) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	created, err := a.DB.Create(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrExists):
			config.ErrorStatus("an account already exists", http.StatusConflict, w, err)
		case errors.Is(err, account.ErrInvalidCredentials):
			config.ErrorStatus("email and password are required", http.StatusBadRequest, w, err)
		default:
			config.ErrorStatus("failed to create account", http.StatusInternalServerError, w, err)
		}
		return
	}

	b, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// AccountHandler returns the operator account without credential fields
func (a Account) AccountHandler(w http.ResponseWriter, r *http.Request) {
	current, ok := a.DB.Current()
	if !ok {
		config.ErrorStatus("no account found", http.StatusNotFound, w, account.ErrNoAccount)
		return
	}

	b, err := json.Marshal(current.Public())
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ForgotPasswordHandler issues a password reset token. The response is the
// same whether or not the email matches, so the endpoint cannot be used to
// probe which address the account is under. There is no mail transport here;
// when a token is issued it comes back in the response body.
func (a Account) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req forgotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	resp := map[string]string{"message": "if the account exists, a reset token has been issued"}
	token, err := a.DB.StartReset(req.Email)
	if err != nil {
		if !errors.Is(err, account.ErrNoAccount) {
			config.ErrorStatus("failed to issue reset token", http.StatusInternalServerError, w, err)
			return
		}
		zap.S().Warnw("reset requested for unknown email")
	} else {
		resp["resetToken"] = token
	}

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteAccountHandler removes the operator account, returning the app to
// the signed-out signup state
func (a Account) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.DB.Delete(); err != nil {
		if errors.Is(err, account.ErrNoAccount) {
			config.ErrorStatus("no account found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to delete account", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(map[string]string{"message": "Account deleted successfully"})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ResetPasswordHandler sets a new password given a valid reset token
func (a Account) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := a.DB.CompleteReset(req.Token, req.Password); err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidResetToken):
			config.ErrorStatus("invalid or expired reset token", http.StatusBadRequest, w, err)
		case errors.Is(err, account.ErrInvalidCredentials):
			config.ErrorStatus("a new password is required", http.StatusBadRequest, w, err)
		default:
			config.ErrorStatus("failed to reset password", http.StatusInternalServerError, w, err)
		}
		return
	}

	b, _ := json.Marshal(map[string]string{"message": "password updated"})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
