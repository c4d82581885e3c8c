package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/author"
	"blog-backend/pkg/token"
)

const bcryptCost = 12

type authorService struct {
	repo     author.Repository
	tokens   *token.Manager
	sessions author.SessionStore
}

func NewAuthorService(repo author.Repository, tokens *token.Manager, sessions author.SessionStore) author.Service {
	return &authorService{
		repo:     repo,
		tokens:   tokens,
		sessions: sessions,
	}
}

func (s *authorService) Register(ctx context.Context, req author.RegisterRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	a := &author.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
		Email:     req.Email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Uniqueness is enforced by the index, a duplicate insert comes back
	// as ErrEmailAlreadyRegistered from the repository.
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *authorService) Login(ctx context.Context, req author.LoginRequest) (*author.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByEmail(ctx, req.Email)
	if errors.Is(err, author.ErrAuthorNotFound) {
		// Do not reveal whether the email exists.
		return nil, author.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find author by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(req.Password)); err != nil {
		return nil, author.ErrInvalidCredentials
	}

	signed, sessionID, err := s.tokens.Generate(a.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	if err := s.sessions.Start(ctx, sessionID, a.ID.Hex(), s.tokens.TTL()); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	return &author.LoginResult{
		AuthorID: a.ID.Hex(),
		Token:    signed,
	}, nil
}

func (s *authorService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
