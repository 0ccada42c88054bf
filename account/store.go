package account

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/drivewise/fleet-api/models"
	"github.com/drivewise/fleet-api/storage"
)

// Errors surfaced by the account store
var (
	ErrExists             = errors.New("account: an operator account already exists")
	ErrNoAccount          = errors.New("account: no operator account")
	ErrInvalidCredentials = errors.New("account: invalid credentials")
	ErrInvalidResetToken  = errors.New("account: invalid or expired reset token")
)

const resetTokenTTL = time.Hour

// Store owns the single local operator account. The account is a UI-state
// convenience gating the dashboard views, not a security boundary; the
// password is still stored bcrypt-hashed.
type Store struct {
	mu      sync.Mutex
	snap    storage.Snapshot
	current *models.Account

	// Clock returns the current time; swapped out in tests
	Clock func() time.Time
}

// NewStore returns an account store persisting to the given snapshot
func NewStore(snap storage.Snapshot) *Store {
	return &Store{snap: snap, Clock: time.Now}
}

// Load reads the account snapshot. A missing or malformed snapshot simply
// means nobody has signed up yet.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.snap.Read(storage.AccountKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			zap.S().Warnw("failed to read account snapshot", "error", err)
		}
		return
	}
	var a models.Account
	if err := json.Unmarshal(b, &a); err != nil {
		zap.S().Warnw("malformed account snapshot, signup required", "error", err)
		return
	}
	if a.Email != "" {
		s.current = &a
	}
}

// Current returns the operator account, if one has been created
func (s *Store) Current() (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Account{}, false
	}
	return *s.current, true
}

// Create registers the operator account and persists it
func (s *Store) Create(name, email, password string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return models.Account{}, ErrExists
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return models.Account{}, ErrInvalidCredentials
	}
	if strings.TrimSpace(name) == "" {
		name = "Fleet Admin"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}
	a := models.Account{
		ID:           "u_" + uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.persist(a); err != nil {
		return models.Account{}, err
	}
	s.current = &a
	zap.S().Infow("operator account created", "email", a.Email)
	return a.Public(), nil
}

// Verify checks the email and password against the stored account
func (s *Store) Verify(email, password string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.Account{}, ErrNoAccount
	}
	given := sha256.Sum256([]byte(strings.TrimSpace(strings.ToLower(email))))
	want := sha256.Sum256([]byte(s.current.Email))
	emailMatch := subtle.ConstantTimeCompare(given[:], want[:]) == 1

	if err := bcrypt.CompareHashAndPassword([]byte(s.current.PasswordHash), []byte(password)); err != nil || !emailMatch {
		return models.Account{}, ErrInvalidCredentials
	}
	return s.current.Public(), nil
}

// StartReset issues a one-time password reset token for the given email. Only
// the sha256 of the token is stored; the plain token goes back to the caller.
func (s *Store) StartReset(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.Email != strings.TrimSpace(strings.ToLower(email)) {
		return "", ErrNoAccount
	}
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	plain := hex.EncodeToString(raw)

	a := *s.current
	a.ResetTokenHash = hashToken(plain)
	a.ResetExpiresAt = s.Clock().Add(resetTokenTTL).Unix()
	if err := s.persist(a); err != nil {
		return "", err
	}
	s.current = &a
	return plain, nil
}

// CompleteReset sets a new password if the token matches and has not expired
func (s *Store) CompleteReset(token, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ResetTokenHash == "" {
		return ErrInvalidResetToken
	}
	if password == "" {
		return ErrInvalidCredentials
	}
	if s.Clock().Unix() > s.current.ResetExpiresAt {
		return ErrInvalidResetToken
	}
	if subtle.ConstantTimeCompare([]byte(hashToken(token)), []byte(s.current.ResetTokenHash)) != 1 {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a := *s.current
	a.PasswordHash = string(hashed)
	a.ResetTokenHash = ""
	a.ResetExpiresAt = 0
	if err := s.persist(a); err != nil {
		return err
	}
	s.current = &a
	return nil
}

// Delete removes the operator account, ending the signup state. Used by
// account removal in settings.
func (s *Store) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoAccount
	}
	if err := s.persist(models.Account{}); err != nil {
		return err
	}
	s.current = nil
	return nil
}

func (s *Store) persist(a models.Account) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return s.snap.Write(storage.AccountKey, b)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
