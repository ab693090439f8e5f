package notification

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mentorhub/core"
)

type Type string

// Notification types
const (
	TypeInfo        Type = "info"
	TypeSuccess     Type = "success"
	TypeWarning     Type = "warning"
	TypeAchievement Type = "achievement"
)

// Read filters
const (
	FilterUnread = "unread"
	FilterRead   = "read"
)

var ErrNotFound = core.NewNotFoundError("notification")

type (
	Notification struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Message   string    `json:"message"`
		Type      Type      `json:"type"`
		Read      bool      `json:"read"`
		Timestamp time.Time `json:"timestamp"`
	}

	QueryFilter struct {
		Filter string `query:"filter" validate:"omitempty,oneof=all unread read"`
	}

	Repository interface {
		QueryAllNotifications(ctx context.Context) ([]Notification, error)
		GetNotificationByID(ctx context.Context, id string) (Notification, error)
		UpdateNotification(ctx context.Context, n Notification) (Notification, error)
		DeleteNotificationByID(ctx context.Context, id string) error
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
		mutex    sync.Mutex
	}
)

func (f QueryFilter) matches(n Notification) bool {
	switch f.Filter {
	case FilterUnread:
		return !n.Read
	case FilterRead:
		return n.Read
	}
	return true
}

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Notification, error) {
	if err := svc.validate.Struct(filter); err != nil {
		return nil, err
	}
	all, err := svc.repo.QueryAllNotifications(ctx)
	if err != nil {
		return nil, err
	}
	notifs := make([]Notification, 0, len(all))
	for _, n := range all {
		if filter.matches(n) {
			notifs = append(notifs, n)
		}
	}
	return notifs, nil
}

// Recent returns the first `n` notifications.
func (svc *Service) Recent(ctx context.Context, n int) ([]Notification, error) {
	all, err := svc.repo.QueryAllNotifications(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

func (svc *Service) UnreadCount(ctx context.Context) (int, error) {
	unread, err := svc.Filter(ctx, QueryFilter{Filter: FilterUnread})
	return len(unread), err
}

func (svc *Service) MarkAsRead(ctx context.Context, id string) (Notification, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	n, err := svc.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return Notification{}, err
	}
	if n.Read {
		return n, nil
	}
	n.Read = true
	return svc.repo.UpdateNotification(ctx, n)
}

// MarkAllAsRead is idempotent; it returns the number of notifications it marked.
func (svc *Service) MarkAllAsRead(ctx context.Context) (int, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	unread, err := svc.Filter(ctx, QueryFilter{Filter: FilterUnread})
	if err != nil {
		return 0, err
	}
	for _, n := range unread {
		n.Read = true
		if _, err = svc.repo.UpdateNotification(ctx, n); err != nil {
			return 0, err
		}
	}
	return len(unread), nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteNotificationByID(ctx, id)
}
