package notification

import "context"

type Repository interface {
	CreateNotification(ctx context.Context, notification *Notification) error
	GetNotificationByID(ctx context.Context, notificationID int64) (*Notification, error)
	ListNotificationsByUserID(ctx context.Context, userID int64) ([]Notification, error)
	UpdateNotificationText(ctx context.Context, notificationID int64, text string) (bool, error)
	DeleteNotification(ctx context.Context, notificationID int64) (bool, error)
	DeleteNotificationsByUserID(ctx context.Context, userID int64) (int64, error)
}
