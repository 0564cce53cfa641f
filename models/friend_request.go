package models

import "time"

// Статусы заявки в друзья. Других переходов нет:
// pending -> accepted, подтверждает только получатель.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
)

// FriendRequest - заявка в друзья между двумя пользователями.
// Для неупорядоченной пары {sender, recipient} может существовать
// не более одной записи в любом статусе.
type FriendRequest struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID    int64      `gorm:"index" json:"sender_id"`
	RecipientID int64      `gorm:"index" json:"recipient_id"`
	Status      string     `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}
