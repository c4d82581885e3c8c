package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/author"
	"blog-backend/pkg/token"
)

type fakeAuthorRepo struct {
	byEmail map[string]*author.Author
	findErr error
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{byEmail: make(map[string]*author.Author)}
}

func (r *fakeAuthorRepo) Create(_ context.Context, a *author.Author) error {
	if _, exists := r.byEmail[a.Email]; exists {
		return author.ErrEmailAlreadyRegistered
	}
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	r.byEmail[a.Email] = a
	return nil
}

func (r *fakeAuthorRepo) FindByEmail(_ context.Context, email string) (*author.Author, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byEmail[email]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

func (r *fakeAuthorRepo) ExistsByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeSessions struct {
	started map[string]string // sessionID -> authorID
	revoked []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{started: make(map[string]string)}
}

func (s *fakeSessions) Start(_ context.Context, sessionID, authorID string, _ time.Duration) error {
	s.started[sessionID] = authorID
	return nil
}

func (s *fakeSessions) Revoke(_ context.Context, sessionID string) error {
	s.revoked = append(s.revoked, sessionID)
	return nil
}

func newTestService() (author.Service, *fakeAuthorRepo, *fakeSessions, *token.Manager) {
	repo := newFakeAuthorRepo()
	sessions := newFakeSessions()
	tokens := token.NewManager("test-secret", time.Hour)
	return NewAuthorService(repo, tokens, sessions), repo, sessions, tokens
}

func registerRequest() author.RegisterRequest {
	return author.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Title:     "Mrs",
		Email:     "ada@example.com",
		Password:  "secret",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo, _, _ := newTestService()

	a, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.False(t, a.ID.IsZero())

	stored := repo.byEmail["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestRegisterRejectsInvalidRequest(t *testing.T) {
	svc, repo, _, _ := newTestService()

	req := registerRequest()
	req.Email = "not-an-email"

	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
	assert.Empty(t, repo.byEmail)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, author.ErrEmailAlreadyRegistered)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _, sessions, tokens := newTestService()

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), author.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID.Hex(), result.AuthorID)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.Hex(), claims.AuthorID)

	// login must have registered the token's session
	assert.Equal(t, registered.ID.Hex(), sessions.started[claims.ID])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), author.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, author.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Login(context.Background(), author.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, author.ErrInvalidCredentials)
}

// A store failure during login must surface as an error, never as bad
// credentials: the handler maps it to 500, not 401.
func TestLoginStoreFailure(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	storeErr := errors.New("mongo: connection refused")
	repo.findErr = storeErr

	_, err = svc.Login(context.Background(), author.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, author.ErrInvalidCredentials)
	assert.ErrorIs(t, err, storeErr)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions, _ := newTestService()

	require.NoError(t, svc.Logout(context.Background(), "session-123"))
	assert.Equal(t, []string{"session-123"}, sessions.revoked)
}
