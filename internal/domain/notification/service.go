package notification

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddNotification(ctx context.Context, userID int64, text string) (*Notification, error) {
	text, err := validateText(text)
	if err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	notification := &Notification{UserID: userID, Text: text}
	if err := s.repo.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *Service) GetNotificationByID(ctx context.Context, notificationID int64) (*Notification, error) {
	return s.repo.GetNotificationByID(ctx, notificationID)
}

func (s *Service) ListNotificationsByUserID(ctx context.Context, userID int64) ([]Notification, error) {
	return s.repo.ListNotificationsByUserID(ctx, userID)
}

func (s *Service) UpdateNotification(ctx context.Context, notificationID int64, text string) error {
	text, err := validateText(text)
	if err != nil {
		return err
	}

	updated, err := s.repo.UpdateNotificationText(ctx, notificationID, text)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) DeleteNotification(ctx context.Context, notificationID int64) error {
	deleted, err := s.repo.DeleteNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotificationNotFound
	}
	return nil
}

// DeleteNotificationsByUserID clears a user's inbox and returns how many
// notifications were removed. An empty inbox is not an error.
func (s *Service) DeleteNotificationsByUserID(ctx context.Context, userID int64) (int64, error) {
	return s.repo.DeleteNotificationsByUserID(ctx, userID)
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	return text, nil
}
