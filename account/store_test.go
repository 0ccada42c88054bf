package account_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/drivewise/fleet-api/account"
	"github.com/drivewise/fleet-api/storage"
	"github.com/drivewise/fleet-api/storage/mocks"
)

func newStore(t *testing.T) *account.Store {
	t.Helper()
	snap := &mocks.Snapshot{}
	snap.On("Read", storage.AccountKey).Return(nil, storage.ErrNoSnapshot)
	snap.On("Write", storage.AccountKey, mock.Anything).Return(nil)

	s := account.NewStore(snap)
	s.Load()
	return s
}

func TestCreateAndCurrent(t *testing.T) {
	s := newStore(t)

	_, ok := s.Current()
	assert.False(t, ok)

	created, err := s.Create("Fleet Admin", "Admin@Example.com ", "hunter22")
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", created.Email, "emails are normalized lowercase")
	assert.Equal(t, "Fleet Admin", created.Name)
	assert.Empty(t, created.PasswordHash, "Create returns the public view")

	got, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, created.ID, got.ID)
	assert.NotEmpty(t, got.PasswordHash)
}

func TestCreateDefaultsBlankName(t *testing.T) {
	s := newStore(t)

	created, err := s.Create("  ", "a@b.com", "pw")
	assert.NoError(t, err)
	assert.Equal(t, "Fleet Admin", created.Name)
}

func TestCreateSecondAccountRejected(t *testing.T) {
	s := newStore(t)

	_, err := s.Create("A", "a@b.com", "pw")
	assert.NoError(t, err)

	_, err = s.Create("B", "b@c.com", "pw2")
	assert.ErrorIs(t, err, account.ErrExists)
}

func TestCreateRequiresEmailAndPassword(t *testing.T) {
	s := newStore(t)

	_, err := s.Create("A", "", "pw")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)

	_, err = s.Create("A", "a@b.com", "")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestVerify(t *testing.T) {
	s := newStore(t)
	_, err := s.Create("A", "a@b.com", "hunter22")
	assert.NoError(t, err)

	got, err := s.Verify("A@B.com", "hunter22")
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Empty(t, got.PasswordHash)

	_, err = s.Verify("a@b.com", "wrong")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)

	_, err = s.Verify("other@b.com", "hunter22")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestVerifyWithoutAccount(t *testing.T) {
	s := newStore(t)

	_, err := s.Verify("a@b.com", "pw")
	assert.ErrorIs(t, err, account.ErrNoAccount)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	s := newStore(t)
	_, err := s.Create("A", "a@b.com", "oldpw")
	assert.NoError(t, err)

	token, err := s.StartReset("a@b.com")
	assert.NoError(t, err)
	assert.Len(t, token, 64)

	got, ok := s.Current()
	assert.True(t, ok)
	assert.NotEqual(t, token, got.ResetTokenHash, "only the token hash is stored")

	assert.NoError(t, s.CompleteReset(token, "newpw"))

	_, err = s.Verify("a@b.com", "oldpw")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
	_, err = s.Verify("a@b.com", "newpw")
	assert.NoError(t, err)

	// tokens are one-time
	assert.ErrorIs(t, s.CompleteReset(token, "evenNewer"), account.ErrInvalidResetToken)
}

func TestStartResetUnknownEmail(t *testing.T) {
	s := newStore(t)
	_, err := s.Create("A", "a@b.com", "pw")
	assert.NoError(t, err)

	_, err = s.StartReset("nobody@b.com")
	assert.ErrorIs(t, err, account.ErrNoAccount)
}

func TestCompleteResetExpiredToken(t *testing.T) {
	s := newStore(t)
	_, err := s.Create("A", "a@b.com", "pw")
	assert.NoError(t, err)

	issued := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	s.Clock = func() time.Time { return issued }
	token, err := s.StartReset("a@b.com")
	assert.NoError(t, err)

	s.Clock = func() time.Time { return issued.Add(2 * time.Hour) }
	assert.ErrorIs(t, s.CompleteReset(token, "newpw"), account.ErrInvalidResetToken)
}

func TestCompleteResetBadToken(t *testing.T) {
	s := newStore(t)
	_, err := s.Create("A", "a@b.com", "pw")
	assert.NoError(t, err)

	_, err = s.StartReset("a@b.com")
	assert.NoError(t, err)

	assert.ErrorIs(t, s.CompleteReset("deadbeef", "newpw"), account.ErrInvalidResetToken)
}

func TestDelete(t *testing.T) {
	s := newStore(t)
	_, err := s.Create("A", "a@b.com", "pw")
	assert.NoError(t, err)

	assert.NoError(t, s.Delete())
	_, ok := s.Current()
	assert.False(t, ok)

	assert.ErrorIs(t, s.Delete(), account.ErrNoAccount)
}
