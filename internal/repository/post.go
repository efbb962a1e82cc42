package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
)

type PostRepositoryIface interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindByOrganization(ctx context.Context, orgID string) ([]*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
}

type PostRepository struct {
	store store.Store
}

func NewPostRepository(s store.Store) *PostRepository {
	return &PostRepository{store: s}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = r.store.GenerateID(model.CollectionPosts)
	}
	if err := r.store.Create(ctx, model.CollectionPosts, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := r.store.Get(ctx, model.CollectionPosts, id, &post); err != nil {
		return nil, notFound(err, domain.ErrPostNotFound)
	}
	return &post, nil
}

func (r *PostRepository) FindByOrganization(ctx context.Context, orgID string) ([]*model.Post, error) {
	var posts []*model.Post
	if err := r.store.Query(ctx, model.CollectionPosts, "organization_id", orgID, &posts); err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	return posts, nil
}

// FindAll returns all posts in creation order
func (r *PostRepository) FindAll(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	if err := r.store.List(ctx, model.CollectionPosts, &posts); err != nil {
		return nil, fmt.Errorf("failed to find all posts: %w", err)
	}
	return posts, nil
}
