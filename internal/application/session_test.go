package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *mocks.MockAuthAPI, *mocks.MockTokenStore) {
	t.Helper()

	auth := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenStore(t)
	return NewSession(auth, tokens, nil), auth, tokens
}

func TestSessionLoginStoresTokenAndFetchesIdentity(t *testing.T) {
	session, auth, tokens := newTestSession(t)
	want := domain.Identity{ID: "u1", Email: "ana@example.com", FullName: "Ana"}

	auth.EXPECT().Login(mockAnyContext(), domain.Credentials{Email: "ana@example.com", Password: "pw"}).
		Return(domain.AccessToken{Value: "tok", TokenType: "bearer"}, nil).Once()
	tokens.EXPECT().Save(mockAnyContext(), "tok").Return(nil).Once()
	auth.EXPECT().Me(mockAnyContext()).Return(want, nil).Once()

	got, err := session.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, SessionAuthenticated, session.State())

	identity, ok := session.Identity()
	require.True(t, ok)
	assert.Equal(t, want, identity)
}

func TestSessionLoginValidatesBeforeAnyRequest(t *testing.T) {
	session, _, _ := newTestSession(t)

	_, err := session.Login(context.Background(), "", "pw")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "email", validation.Field)

	_, err = session.Login(context.Background(), "ana@example.com", "")
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "password", validation.Field)
}

func TestSessionLoginReturnsRemoteMessage(t *testing.T) {
	session, auth, _ := newTestSession(t)

	auth.EXPECT().Login(mockAnyContext(), mock.Anything).
		Return(domain.AccessToken{}, &domain.RemoteError{Status: http.StatusUnauthorized, Message: "Incorrect email or password"}).Once()

	_, err := session.Login(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", domain.UserMessage(err))
	assert.NotEqual(t, SessionAuthenticated, session.State())
}

func TestSessionLoginRollsBackTokenWhenIdentityFetchFails(t *testing.T) {
	session, auth, tokens := newTestSession(t)
	meErr := &domain.NetworkError{Op: "GET /auth/me", Err: errors.New("connection reset")}

	auth.EXPECT().Login(mockAnyContext(), mock.Anything).Return(domain.AccessToken{Value: "tok"}, nil).Once()
	tokens.EXPECT().Save(mockAnyContext(), "tok").Return(nil).Once()
	auth.EXPECT().Me(mockAnyContext()).Return(domain.Identity{}, meErr).Once()
	tokens.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	_, err := session.Login(context.Background(), "ana@example.com", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, meErr)
	assert.Equal(t, SessionAnonymous, session.State())
}

func TestSessionLoginJoinsRollbackFailure(t *testing.T) {
	session, auth, tokens := newTestSession(t)
	meErr := errors.New("me failed")
	clearErr := errors.New("clear failed")

	auth.EXPECT().Login(mockAnyContext(), mock.Anything).Return(domain.AccessToken{Value: "tok"}, nil).Once()
	tokens.EXPECT().Save(mockAnyContext(), "tok").Return(nil).Once()
	auth.EXPECT().Me(mockAnyContext()).Return(domain.Identity{}, meErr).Once()
	tokens.EXPECT().Clear(mockAnyContext()).Return(clearErr).Once()

	_, err := session.Login(context.Background(), "ana@example.com", "pw")
	assert.ErrorIs(t, err, meErr)
	assert.ErrorIs(t, err, clearErr)
}

func TestSessionRegisterRequiresFullName(t *testing.T) {
	session, _, _ := newTestSession(t)

	_, err := session.Register(context.Background(), "ana@example.com", "pw", " ")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "full name", validation.Field)
}

func TestSessionRegisterAuthenticates(t *testing.T) {
	session, auth, tokens := newTestSession(t)
	want := domain.Identity{ID: "u2", Email: "new@example.com", FullName: "Nuevo"}

	auth.EXPECT().Register(mockAnyContext(), domain.Registration{
		Credentials: domain.Credentials{Email: "new@example.com", Password: "pw"},
		FullName:    "Nuevo",
	}).Return(domain.AccessToken{Value: "tok-2"}, nil).Once()
	tokens.EXPECT().Save(mockAnyContext(), "tok-2").Return(nil).Once()
	auth.EXPECT().Me(mockAnyContext()).Return(want, nil).Once()

	got, err := session.Register(context.Background(), "new@example.com", "pw", "Nuevo")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSessionLoginWithFacebook(t *testing.T) {
	session, auth, tokens := newTestSession(t)
	profile := domain.FacebookProfile{FacebookID: "fb-1", AccessToken: "fb-token", Email: "ana@example.com", FullName: "Ana"}

	auth.EXPECT().LoginWithFacebook(mockAnyContext(), profile).Return(domain.AccessToken{Value: "tok"}, nil).Once()
	tokens.EXPECT().Save(mockAnyContext(), "tok").Return(nil).Once()
	auth.EXPECT().Me(mockAnyContext()).Return(domain.Identity{ID: "u1"}, nil).Once()

	got, err := session.LoginWithFacebook(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("u1"), got.ID)
}

func TestSessionLogoutThenInitMakesNoNetworkCall(t *testing.T) {
	session, _, tokens := newTestSession(t)

	tokens.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
	tokens.EXPECT().Load(mockAnyContext()).Return("", domain.ErrTokenNotFound).Once()

	require.NoError(t, session.Logout(context.Background()))
	require.NoError(t, session.Init(context.Background()))

	assert.Equal(t, SessionAnonymous, session.State())
	_, ok := session.Identity()
	assert.False(t, ok)
}

func TestSessionCurrentIdentityWithoutTokenIsUnauthenticated(t *testing.T) {
	session, _, tokens := newTestSession(t)

	tokens.EXPECT().Load(mockAnyContext()).Return("", domain.ErrTokenNotFound).Once()

	_, err := session.CurrentIdentity(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionInitRestoresIdentity(t *testing.T) {
	session, auth, tokens := newTestSession(t)

	tokens.EXPECT().Load(mockAnyContext()).Return("tok", nil).Once()
	auth.EXPECT().Me(mockAnyContext()).Return(domain.Identity{ID: "u1"}, nil).Once()

	require.NoError(t, session.Init(context.Background()))
	assert.Equal(t, SessionAuthenticated, session.State())
}

func TestSessionInitPurgesRejectedToken(t *testing.T) {
	session, auth, tokens := newTestSession(t)

	tokens.EXPECT().Load(mockAnyContext()).Return("expired", nil).Once()
	auth.EXPECT().Me(mockAnyContext()).Return(domain.Identity{}, &domain.RemoteError{Status: http.StatusUnauthorized, Message: "Could not validate credentials"}).Once()
	tokens.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	require.NoError(t, session.Init(context.Background()))
	assert.Equal(t, SessionAnonymous, session.State())
}

func TestSessionInitKeepsTokenOnNetworkError(t *testing.T) {
	session, auth, tokens := newTestSession(t)
	netErr := &domain.NetworkError{Op: "GET /auth/me", Err: context.DeadlineExceeded}

	tokens.EXPECT().Load(mockAnyContext()).Return("tok", nil).Once()
	auth.EXPECT().Me(mockAnyContext()).Return(domain.Identity{}, netErr).Once()

	err := session.Init(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, SessionAnonymous, session.State())
}

func TestSessionStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", SessionUninitialized.String())
	assert.Equal(t, "authenticated", SessionAuthenticated.String())
	assert.Equal(t, "SessionState(42)", SessionState(42).String())
}

func mockAnyContext() interface{} {
	return mock.Anything
}
