package inmemdb

import (
	"context"

	"github.com/trezcool/mentorhub/core/notification"
)

type notificationRepository struct {
	db *table[notification.Notification]
}

var _ notification.Repository = (*notificationRepository)(nil)

func NewNotificationRepository(db *DB) notification.Repository {
	return &notificationRepository{db: db.notifications}
}

func (repo *notificationRepository) QueryAllNotifications(_ context.Context) ([]notification.Notification, error) {
	return repo.db.all(), nil
}

func (repo *notificationRepository) GetNotificationByID(_ context.Context, id string) (notification.Notification, error) {
	if n, ok := repo.db.get(id); ok {
		return n, nil
	}
	return notification.Notification{}, notification.ErrNotFound
}

func (repo *notificationRepository) UpdateNotification(_ context.Context, n notification.Notification) (notification.Notification, error) {
	if !repo.db.replace(n) {
		return notification.Notification{}, notification.ErrNotFound
	}
	return n, nil
}

func (repo *notificationRepository) DeleteNotificationByID(_ context.Context, id string) error {
	if !repo.db.remove(id) {
		return notification.ErrNotFound
	}
	return nil
}
