package postgres

import (
	"context"

	"stayhub/internal/domain/notification"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationColumns = `id, user_id, type, title, message, link, read, created_at, updated_at`

type NotificationStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

var _ store.NotificationStore = (*NotificationStore)(nil)

func NewNotificationStore(pool *pgxpool.Pool, clk clock.Clock) *NotificationStore {
	return &NotificationStore{pool: pool, clock: clk}
}

func (s *NotificationStore) Create(ctx context.Context, fields store.NewNotification) (*notification.Notification, error) {
	now := s.clock.Now()
	id := uuid.New()

	row := s.pool.QueryRow(ctx, `
		INSERT INTO notifications (id, user_id, type, title, message, link, read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, false, $7, $8)
		RETURNING `+notificationColumns,
		id, fields.UserID, fields.Type, fields.Title, fields.Message,
		fields.Link, now, now,
	)

	n, err := scanNotification(row)
	if err != nil {
		return nil, wrapErr("failed to create notification", err)
	}
	return n, nil
}

func (s *NotificationStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*notification.Notification, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, wrapErr("failed to list notifications", err)
	}
	defer rows.Close()

	result := make([]*notification.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, wrapErr("failed to scan notification", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate notifications", err)
	}
	return result, nil
}

func (s *NotificationStore) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT read`, userID).Scan(&count)
	if err != nil {
		return 0, wrapErr("failed to count unread notifications", err)
	}
	return count, nil
}

func (s *NotificationStore) MarkRead(ctx context.Context, userID, id uuid.UUID) (*notification.Notification, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE notifications SET read = true, updated_at = $3
		WHERE id = $1 AND user_id = $2
		RETURNING `+notificationColumns,
		id, userID, s.clock.Now(),
	)

	n, err := scanNotification(row)
	if err != nil {
		return nil, wrapErr("notification not found", err)
	}
	return n, nil
}

func (s *NotificationStore) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE notifications SET read = true, updated_at = $2
		WHERE user_id = $1 AND NOT read`, userID, s.clock.Now())
	if err != nil {
		return 0, wrapErr("failed to mark notifications read", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanNotification(row pgx.Row) (*notification.Notification, error) {
	var (
		n    notification.Notification
		link *string
	)
	err := row.Scan(
		&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &link,
		&n.Read, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if link != nil {
		n.Link = *link
	}
	return &n, nil
}
