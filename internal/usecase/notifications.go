package usecase

import (
	"context"
	"errors"
	"strings"

	"stayhub/internal/domain/notification"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidNotification  = errors.New("invalid notification fields")
)

type NotificationUseCase interface {
	Create(ctx context.Context, fields store.NewNotification) (*notification.Notification, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*notification.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*notification.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

type notificationUseCaseImpl struct {
	notifications store.NotificationStore
}

func NewNotificationUseCase(notifications store.NotificationStore) NotificationUseCase {
	return &notificationUseCaseImpl{notifications: notifications}
}

func (u *notificationUseCaseImpl) Create(ctx context.Context, fields store.NewNotification) (*notification.Notification, error) {
	fields.Title = strings.TrimSpace(fields.Title)
	fields.Message = strings.TrimSpace(fields.Message)
	if err := notification.Validate(fields.Title, fields.Message); err != nil {
		return nil, errs.Mark(err, ErrInvalidNotification)
	}

	created, err := u.notifications.Create(ctx, fields)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create notification")
	}
	return created, nil
}

func (u *notificationUseCaseImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*notification.Notification, error) {
	list, err := u.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list notifications")
	}
	return list, nil
}

func (u *notificationUseCaseImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := u.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return 0, errs.Wrap(err, "failed to count unread notifications")
	}
	return count, nil
}

func (u *notificationUseCaseImpl) MarkRead(ctx context.Context, userID, id uuid.UUID) (*notification.Notification, error) {
	updated, err := u.notifications.MarkRead(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, errs.Wrap(err, "failed to mark notification read")
	}
	return updated, nil
}

func (u *notificationUseCaseImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := u.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errs.Wrap(err, "failed to mark notifications read")
	}
	return count, nil
}

// StoreNotifier adapts the notification use case to the booking engine's
// fire-and-forget sink.
type StoreNotifier struct {
	notifications NotificationUseCase
}

var _ HostNotifier = (*StoreNotifier)(nil)

func NewStoreNotifier(notifications NotificationUseCase) *StoreNotifier {
	return &StoreNotifier{notifications: notifications}
}

func (n *StoreNotifier) Notify(ctx context.Context, userID uuid.UUID, kind, title, message, link string) error {
	_, err := n.notifications.Create(ctx, store.NewNotification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
		Link:    link,
	})
	return err
}
