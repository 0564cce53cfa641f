package models

import "time"

// Friendship - одна сторона дружбы (user_id -> friend_id).
// Дружба симметрична: при подтверждении заявки создаются обе записи.
// Композитный уникальный индекс дает семантику множества.
type Friendship struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index:friendship_pair_idx,unique" json:"user_id"`
	FriendID  int64     `gorm:"index:friendship_pair_idx,unique" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}
