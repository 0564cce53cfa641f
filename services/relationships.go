package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"streamify/db"
	"streamify/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RelationshipService struct{}

func NewRelationshipService() *RelationshipService {
	return &RelationshipService{}
}

// SendFriendRequest создает заявку в друзья от actorID к recipientID
func (rs *RelationshipService) SendFriendRequest(ctx context.Context, actorID, recipientID int64) (*models.FriendRequest, error) {
	if actorID == recipientID {
		return nil, fmt.Errorf("%w: cannot send friend request to yourself", ErrInvalidOperation)
	}

	// Получатель должен существовать
	var recipientCount int64
	err := db.GetReadOnlyDB(ctx).Model(&models.User{}).Where("id = ?", recipientID).Count(&recipientCount).Error
	if err != nil {
		return nil, fmt.Errorf("error checking recipient: %w", err)
	}
	if recipientCount == 0 {
		return nil, fmt.Errorf("%w: recipient not found", ErrNotFound)
	}

	// Проверяем, что дружба еще не существует - в обоих направлениях,
	// на случай односторонней записи
	var friendshipCount int64
	err = db.GetReadOnlyDB(ctx).Model(&models.Friendship{}).Where(
		"(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		actorID, recipientID, recipientID, actorID,
	).Count(&friendshipCount).Error
	if err != nil {
		return nil, fmt.Errorf("error checking friendship: %w", err)
	}
	if friendshipCount > 0 {
		return nil, fmt.Errorf("%w: already friends", ErrConflict)
	}

	// Заявка блокируется в обоих направлениях и в любом статусе,
	// иначе возможны встречные дубликаты между одной парой
	var existing models.FriendRequest
	err = db.GetReadOnlyDB(ctx).Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		actorID, recipientID, recipientID, actorID,
	).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: friend request already exists between these users", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing request: %w", err)
	}

	request := &models.FriendRequest{
		SenderID:    actorID,
		RecipientID: recipientID,
		Status:      models.RequestStatusPending,
		CreatedAt:   time.Now(),
	}
	if err := db.GetWriteDB(ctx).Create(request).Error; err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}

	// Уведомление получателю, ошибки брокера не влияют на результат
	if err := PublishRelationshipEvent(ctx, RelationshipEvent{
		Event:       EventRequestCreated,
		RequestID:   request.ID,
		SenderID:    actorID,
		RecipientID: recipientID,
		CreatedAt:   request.CreatedAt,
	}); err != nil {
		log.Printf("SendFriendRequest: failed to publish event: %v", err)
	}

	return request, nil
}

// AcceptFriendRequest подтверждает заявку. Подтвердить может только получатель.
// Статус и обе стороны дружбы обновляются в одной транзакции, чтобы не
// остаться с accepted-заявкой и односторонней дружбой при частичном сбое.
func (rs *RelationshipService) AcceptFriendRequest(ctx context.Context, actorID, requestID int64) error {
	var request models.FriendRequest
	err := db.GetWriteDB(ctx).Where("id = ?", requestID).First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: friend request not found", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("error loading friend request: %w", err)
	}

	if request.RecipientID != actorID {
		return fmt.Errorf("%w: only the recipient can accept this request", ErrForbidden)
	}

	now := time.Now()
	err = db.GetWriteDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.FriendRequest{}).Where("id = ?", request.ID).Updates(map[string]interface{}{
			"status":      models.RequestStatusAccepted,
			"accepted_at": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}

		// Add-to-set: повторное подтверждение не дублирует записи
		pair := []models.Friendship{
			{UserID: request.SenderID, FriendID: request.RecipientID, CreatedAt: now},
			{UserID: request.RecipientID, FriendID: request.SenderID, CreatedAt: now},
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "friend_id"}},
			DoNothing: true,
		}).Create(&pair).Error; err != nil {
			return fmt.Errorf("failed to create friendship: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := PublishRelationshipEvent(ctx, RelationshipEvent{
		Event:       EventRequestAccepted,
		RequestID:   request.ID,
		SenderID:    request.SenderID,
		RecipientID: request.RecipientID,
		CreatedAt:   now,
	}); err != nil {
		log.Printf("AcceptFriendRequest: failed to publish event: %v", err)
	}

	return nil
}
