package models

// Account is the single local operator identity behind the session token.
// The password hash and reset fields stay in the snapshot only; they are
// stripped from every API response.
type Account struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PasswordHash   string `json:"passwordHash,omitempty"`
	ResetTokenHash string `json:"resetTokenHash,omitempty"`
	ResetExpiresAt int64  `json:"resetExpiresAt,omitempty"`
}

// Public returns the account without credential material
func (a Account) Public() Account {
	return Account{ID: a.ID, Name: a.Name, Email: a.Email}
}
