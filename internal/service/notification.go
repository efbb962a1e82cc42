// internal/service/notification.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/email"
	"github.com/dangerclosesec/tounesna/internal/email/mailer"
	"github.com/dangerclosesec/tounesna/internal/metrics"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
)

// NotificationService writes in-app notifications and, when an email
// service is configured, mirrors request notifications to the inbox.
type NotificationService struct {
	repo         repository.NotificationRepositoryIface
	emailService *email.Service
	baseURL      string
	logger       *slog.Logger
}

func NewNotificationService(
	repo repository.NotificationRepositoryIface,
	emailService *email.Service,
	baseURL string,
	logger *slog.Logger,
) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{
		repo:         repo,
		emailService: emailService,
		baseURL:      baseURL,
		logger:       logger.With("service", "notification"),
	}
}

// Notify stores n as unread. Exactly one related id must be set.
func (s *NotificationService) Notify(ctx context.Context, n *model.Notification) error {
	if n.UserID == "" || !n.UserType.Valid() || !n.Type.Valid() {
		return fmt.Errorf("%w: notification needs a recipient and a known type", domain.ErrInvalidInput)
	}
	if n.RelatedCount() != 1 {
		return fmt.Errorf("%w: notification %s must reference exactly one record", domain.ErrInvalidInput, n.Type)
	}

	n.IsRead = false
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	metrics.NotificationsSent.WithLabelValues(string(n.Type)).Inc()
	return nil
}

// notifyQuietly is used after the primary write already succeeded; a
// failed notification is logged, not returned.
func (s *NotificationService) notifyQuietly(ctx context.Context, n *model.Notification) {
	if err := s.Notify(ctx, n); err != nil {
		s.logger.ErrorContext(ctx, "failed to create notification",
			"type", n.Type,
			"user_id", n.UserID,
			"error", err,
		)
	}
}

// EmailRequest sends the email matching a request notification kind.
// It does nothing when no email service is configured or to is empty.
func (s *NotificationService) EmailRequest(ctx context.Context, kind model.NotificationType, to string, data mailer.RequestTemplateData) {
	if s.emailService == nil || to == "" {
		return
	}
	if data.Link == "" {
		data.Link = s.baseURL + "/requests"
	}

	var err error
	switch kind {
	case model.NotificationRequestReceived:
		err = mailer.SendRequestReceived(s.emailService, to, data)
	case model.NotificationRequestApproved:
		err = mailer.SendRequestApproved(s.emailService, to, data)
	case model.NotificationRequestRejected:
		err = mailer.SendRequestRejected(s.emailService, to, data)
	default:
		return
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to send request email", "type", kind, "error", err)
	}
}

// ForUser returns the user's notifications, newest first.
func (s *NotificationService) ForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	notifications, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

// Unread returns the user's unread notifications, newest first.
func (s *NotificationService) Unread(ctx context.Context, userID string) ([]*model.Notification, error) {
	all, err := s.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread := make([]*model.Notification, 0, len(all))
	for _, n := range all {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	unread, err := s.Unread(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}

// MarkAsRead flags one notification as read. Only its recipient may do so.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return domain.ErrUnauthorized
	}
	if n.IsRead {
		return nil
	}
	return s.repo.MarkRead(ctx, notificationID)
}

// MarkAllAsRead flags every unread notification of the user and returns how many changed.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) (int, error) {
	unread, err := s.Unread(ctx, userID)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, n := range unread {
		if err := s.repo.MarkRead(ctx, n.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return marked, err
		}
		marked++
	}
	return marked, nil
}
