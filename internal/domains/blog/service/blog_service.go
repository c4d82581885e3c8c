package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog"
)

type blogService struct {
	repo    blog.Repository
	authors blog.AuthorChecker
}

func NewBlogService(repo blog.Repository, authors blog.AuthorChecker) blog.Service {
	return &blogService{
		repo:    repo,
		authors: authors,
	}
}

func (s *blogService) Create(ctx context.Context, req blog.CreateBlogRequest) (*blog.Blog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	authorID, err := primitive.ObjectIDFromHex(req.AuthorID)
	if err != nil {
		return nil, blog.ErrInvalidAuthorID
	}

	exists, err := s.authors.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("check author exists: %w", err)
	}
	if !exists {
		return nil, blog.ErrAuthorNotFound
	}

	now := time.Now()
	b := &blog.Blog{
		Title:       strings.TrimSpace(req.Title),
		Body:        req.Body,
		AuthorID:    authorID,
		Category:    strings.TrimSpace(req.Category),
		Tags:        blog.Dedupe(req.Tags),
		Subcategory: blog.Dedupe(req.Subcategory),
		IsPublished: req.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsPublished {
		b.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *blogService) List(ctx context.Context, q blog.ListQuery) ([]blog.Blog, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	// Listing only ever exposes live, published posts.
	published := true
	filter := blog.ListFilter{IsPublished: &published}

	if q.AuthorID != nil {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(*q.AuthorID))
		if err != nil {
			return nil, blog.ErrInvalidAuthorID
		}
		filter.AuthorID = &id
	}
	if q.Category != nil {
		category := strings.TrimSpace(*q.Category)
		filter.Category = &category
	}
	if q.Tags != nil {
		filter.Tags = blog.SplitAndTrim(*q.Tags)
	}
	if q.Subcategory != nil {
		filter.Subcategory = blog.SplitAndTrim(*q.Subcategory)
	}

	blogs, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, blog.ErrNoBlogsFound
	}

	return blogs, nil
}

func (s *blogService) Update(ctx context.Context, blogID, callerID string, req blog.UpdateBlogRequest) (*blog.Blog, error) {
	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, blog.ErrInvalidBlogID
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.IsDeleted {
		return nil, blog.ErrBlogNotFound
	}

	if err := s.authorize(b, callerID); err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return nil, blog.ErrNothingToUpdate
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	spec := blog.UpdateSpec{
		Title:          req.Title,
		Body:           req.Body,
		AddTags:        blog.Dedupe(req.Tags),
		AddSubcategory: blog.Dedupe(req.Subcategory),
		IsPublished:    req.IsPublished,
		UpdatedAt:      now,
	}
	if req.IsPublished != nil && *req.IsPublished {
		spec.PublishedAt = &now
	}

	return s.repo.Update(ctx, id, spec)
}

func (s *blogService) Delete(ctx context.Context, blogID, callerID string) (*blog.Blog, error) {
	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, blog.ErrInvalidBlogID
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(b, callerID); err != nil {
		return nil, err
	}

	if b.IsDeleted {
		return nil, blog.ErrBlogAlreadyDeleted
	}

	return s.repo.SoftDelete(ctx, id, time.Now())
}

func (s *blogService) DeleteByFilter(ctx context.Context, callerID string, q blog.DeleteFilterQuery) (int64, error) {
	caller, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return 0, blog.ErrInvalidAuthorID
	}

	if q.IsEmpty() {
		return 0, blog.ErrNoFilter
	}
	if err := q.Validate(); err != nil {
		return 0, err
	}

	filter := blog.ListFilter{IsPublished: q.IsPublished}
	if q.AuthorID != nil {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(*q.AuthorID))
		if err != nil {
			return 0, blog.ErrInvalidAuthorID
		}
		filter.AuthorID = &id
	}
	if q.Category != nil {
		category := strings.TrimSpace(*q.Category)
		filter.Category = &category
	}
	if q.Tags != nil {
		filter.Tags = blog.SplitAndTrim(*q.Tags)
	}
	if q.Subcategory != nil {
		filter.Subcategory = blog.SplitAndTrim(*q.Subcategory)
	}

	matches, err := s.repo.Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, blog.ErrNoBlogsFound
	}

	// Ownership is applied here, not in the query: whatever the filter
	// matched, only the caller's own posts are deleted.
	var owned []primitive.ObjectID
	for i := range matches {
		if matches[i].OwnedBy(caller) {
			owned = append(owned, matches[i].ID)
		}
	}
	if len(owned) == 0 {
		return 0, blog.ErrNoBlogsFound
	}

	return s.repo.SoftDeleteMany(ctx, owned, time.Now())
}

// authorize enforces the ownership predicate shared by every mutating path.
func (s *blogService) authorize(b *blog.Blog, callerID string) error {
	caller, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return blog.ErrNotOwner
	}
	if !b.OwnedBy(caller) {
		return blog.ErrNotOwner
	}
	return nil
}
