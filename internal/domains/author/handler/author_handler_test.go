package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/shared/middleware"
)

type fakeAuthorService struct {
	registerErr error
	loginErr    error
	loginResult *author.LoginResult
}

func (s *fakeAuthorService) Register(_ context.Context, req author.RegisterRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &author.Author{
		ID:        primitive.NewObjectID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
		Email:     req.Email,
	}, nil
}

func (s *fakeAuthorService) Login(_ context.Context, req author.LoginRequest) (*author.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *fakeAuthorService) Logout(context.Context, string) error {
	return nil
}

func newRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthorHandler(svc)
	r := gin.New()
	r.POST("/authors", h.Register)
	r.POST("/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterCreated(t *testing.T) {
	r := newRouter(&fakeAuthorService{})

	w := postJSON(r, "/authors", `{"fname":"A","lname":"B","title":"Mr","email":"a@b.com","password":"x"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":true`)
	assert.Contains(t, w.Body.String(), "a@b.com")
}

func TestRegisterDuplicateEmailMessage(t *testing.T) {
	r := newRouter(&fakeAuthorService{registerErr: author.ErrEmailAlreadyRegistered})

	w := postJSON(r, "/authors", `{"fname":"A","lname":"B","title":"Mr","email":"a@b.com","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.com email address is already registered")
}

func TestRegisterValidationFailure(t *testing.T) {
	r := newRouter(&fakeAuthorService{})

	w := postJSON(r, "/authors", `{"fname":"A","lname":"B","title":"Captain","email":"a@b.com","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title should be among Mr, Mrs, Miss and Mast")
}

func TestRegisterBadBody(t *testing.T) {
	r := newRouter(&fakeAuthorService{})

	w := postJSON(r, "/authors", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSetsTokenHeader(t *testing.T) {
	r := newRouter(&fakeAuthorService{loginResult: &author.LoginResult{
		AuthorID: "64b3f1a2c9e77d0012345678",
		Token:    "signed-token",
	}})

	w := postJSON(r, "/login", `{"email":"a@b.com","password":"x"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "signed-token", w.Header().Get(middleware.TokenHeader))
	assert.Contains(t, w.Body.String(), `"token":"signed-token"`)
	assert.Contains(t, w.Body.String(), `"authorId":"64b3f1a2c9e77d0012345678"`)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newRouter(&fakeAuthorService{loginErr: author.ErrInvalidCredentials})

	w := postJSON(r, "/login", `{"email":"a@b.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid login")
}
