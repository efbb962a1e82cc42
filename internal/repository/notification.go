package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
)

type NotificationRepositoryIface interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByID(ctx context.Context, id string) (*model.Notification, error)
	FindByUser(ctx context.Context, userID string) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type NotificationRepository struct {
	store store.Store
}

func NewNotificationRepository(s store.Store) *NotificationRepository {
	return &NotificationRepository{store: s}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	if notification.ID == "" {
		notification.ID = r.store.GenerateID(model.CollectionNotifications)
	}
	if err := r.store.Create(ctx, model.CollectionNotifications, notification); err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	var notification model.Notification
	if err := r.store.Get(ctx, model.CollectionNotifications, id, &notification); err != nil {
		return nil, notFound(err, domain.ErrNotificationNotFound)
	}
	return &notification, nil
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	var notifications []*model.Notification
	if err := r.store.Query(ctx, model.CollectionNotifications, "user_id", userID, &notifications); err != nil {
		return nil, fmt.Errorf("finding notifications: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	if err := r.store.Update(ctx, model.CollectionNotifications, id, map[string]any{"is_read": true}); err != nil {
		return notFound(err, domain.ErrNotificationNotFound)
	}
	return nil
}
