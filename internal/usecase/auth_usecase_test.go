package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthProvider struct {
	session *Session
	err     error
}

func (f *fakeAuthProvider) SignInWithPassword(_ context.Context, _, _ string) (*Session, error) {
	return f.session, f.err
}

func (f *fakeAuthProvider) SignOut(_ context.Context, _ string) error { return f.err }

func (f *fakeAuthProvider) RefreshSession(_ context.Context, _ string) (*Session, error) {
	return f.session, f.err
}

type fakeAdminRepo struct {
	admins map[string]bool
	err    error
}

func (f *fakeAdminRepo) Exists(_ context.Context, userUID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[userUID], nil
}

func TestAuthSignIn_RequiresCredentials(t *testing.T) {
	uc := NewAuthUC(&fakeAuthProvider{}, &fakeAdminRepo{}, logger.NewSlogLogger())

	_, err := uc.SignIn(context.Background(), &SignInReq{Email: "", Password: "x"})
	require.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.SignIn(context.Background(), &SignInReq{Email: "a@b.c", Password: ""})
	require.ErrorIs(t, err, e.ErrMissingFields)
}

func TestAuthSignIn_DelegatesToProvider(t *testing.T) {
	session := &Session{AccessToken: "at"}
	uc := NewAuthUC(&fakeAuthProvider{session: session}, &fakeAdminRepo{}, logger.NewSlogLogger())

	got, err := uc.SignIn(context.Background(), &SignInReq{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "at", got.AccessToken)
}

func TestAuthRefresh_WrapsProviderError(t *testing.T) {
	uc := NewAuthUC(&fakeAuthProvider{err: e.ErrRefreshTokenNotFound}, &fakeAdminRepo{}, logger.NewSlogLogger())

	_, err := uc.Refresh(context.Background(), "stale")
	require.ErrorIs(t, err, e.ErrRefreshTokenNotFound)
}

func TestAuthIsAdmin(t *testing.T) {
	log := logger.NewSlogLogger()

	uc := NewAuthUC(&fakeAuthProvider{}, &fakeAdminRepo{admins: map[string]bool{"uid-1": true}}, log)
	assert.True(t, uc.IsAdmin(context.Background(), "uid-1"))
	assert.False(t, uc.IsAdmin(context.Background(), "uid-2"))
	assert.False(t, uc.IsAdmin(context.Background(), ""))

	failing := NewAuthUC(&fakeAuthProvider{}, &fakeAdminRepo{err: assert.AnError}, log)
	assert.False(t, failing.IsAdmin(context.Background(), "uid-1"))
}
