package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"

	notificationdomain "petcare-go/internal/domain/notification"
	"petcare-go/internal/sqlerr"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateNotification(ctx context.Context, notification *notificationdomain.Notification) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(notification).Error)
}

func (r *PostgresRepository) GetNotificationByID(ctx context.Context, notificationID int64) (*notificationdomain.Notification, error) {
	var notification notificationdomain.Notification
	if err := r.db.WithContext(ctx).Where("notiid = ?", notificationID).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notificationdomain.ErrNotificationNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &notification, nil
}

func (r *PostgresRepository) ListNotificationsByUserID(ctx context.Context, userID int64) ([]notificationdomain.Notification, error) {
	notifications := make([]notificationdomain.Notification, 0)
	if err := r.db.WithContext(ctx).Where("userid = ?", userID).Order("notiid").Find(&notifications).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return notifications, nil
}

func (r *PostgresRepository) UpdateNotificationText(ctx context.Context, notificationID int64, text string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&notificationdomain.Notification{}).
		Where("notiid = ?", notificationID).
		Update("text", text)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteNotification(ctx context.Context, notificationID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&notificationdomain.Notification{}, "notiid = ?", notificationID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteNotificationsByUserID(ctx context.Context, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&notificationdomain.Notification{}, "userid = ?", userID)
	return result.RowsAffected, sqlerr.Classify(result.Error)
}
