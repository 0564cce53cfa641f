package services

import (
	"context"
	"fmt"

	"streamify/db"
	"streamify/models"
)

// UserCard - проекция профиля для списков друзей и заявок
type UserCard struct {
	ID               int64  `json:"id"`
	FullName         string `json:"full_name"`
	ProfilePic       string `json:"profile_pic"`
	NativeLanguage   string `json:"native_language,omitempty"`
	LearningLanguage string `json:"learning_language,omitempty"`
}

// Списки проекций объявлены один раз, а не литералами в каждом запросе,
// чтобы наборы полей не расходились между запросами.
var (
	friendCardFields = []string{"id", "full_name", "profile_pic", "native_language", "learning_language"}
	shortCardFields  = []string{"id", "full_name", "profile_pic"}

	// Для join-запросов: обе таблицы имеют колонку id, без префикса
	// запрос падает на "ambiguous column name"
	friendCardFieldsQualified = qualifyFields("users", friendCardFields)
)

func qualifyFields(table string, fields []string) []string {
	qualified := make([]string, len(fields))
	for i, f := range fields {
		qualified[i] = table + "." + f
	}
	return qualified
}

// RequestWithUser - заявка с спроецированным отправителем или получателем
type RequestWithUser struct {
	models.FriendRequest
	Sender    *UserCard `json:"sender,omitempty"`
	Recipient *UserCard `json:"recipient,omitempty"`
}

type DirectoryService struct{}

func NewDirectoryService() *DirectoryService {
	return &DirectoryService{}
}

// RecommendedUsers возвращает кандидатов в друзья: не сам пользователь,
// не текущие друзья и только завершившие онбординг
func (ds *DirectoryService) RecommendedUsers(ctx context.Context, actorID int64) ([]models.User, error) {
	var users []models.User
	err := db.GetReadOnlyDB(ctx).
		Where("id != ?", actorID).
		Where("is_onboarded = ?", true).
		Where("id NOT IN (?)",
			db.GetReadOnlyDB(ctx).Model(&models.Friendship{}).Select("friend_id").Where("user_id = ?", actorID),
		).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recommended users: %w", err)
	}
	return users, nil
}

// Friends возвращает друзей пользователя с полями карточки
func (ds *DirectoryService) Friends(ctx context.Context, actorID int64) ([]UserCard, error) {
	var friends []UserCard
	err := db.GetReadOnlyDB(ctx).
		Model(&models.User{}).
		Joins("JOIN friendships f ON f.friend_id = users.id").
		Where("f.user_id = ?", actorID).
		Select(friendCardFieldsQualified).
		Find(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}
	return friends, nil
}

// FriendRequests возвращает входящие pending-заявки и подтвержденные заявки,
// которые пользователь ранее отправил сам. Второй список намеренно не включает
// входящие подтвержденные - это лента "мои заявки, которые приняли".
func (ds *DirectoryService) FriendRequests(ctx context.Context, actorID int64) (incoming, accepted []RequestWithUser, err error) {
	var incomingReqs []models.FriendRequest
	err = db.GetReadOnlyDB(ctx).
		Where("recipient_id = ? AND status = ?", actorID, models.RequestStatusPending).
		Find(&incomingReqs).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get incoming requests: %w", err)
	}

	var acceptedReqs []models.FriendRequest
	err = db.GetReadOnlyDB(ctx).
		Where("sender_id = ? AND status = ?", actorID, models.RequestStatusAccepted).
		Find(&acceptedReqs).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get accepted requests: %w", err)
	}

	incoming, err = ds.withSenders(ctx, incomingReqs, friendCardFields)
	if err != nil {
		return nil, nil, err
	}
	accepted, err = ds.withSenders(ctx, acceptedReqs, shortCardFields)
	if err != nil {
		return nil, nil, err
	}
	return incoming, accepted, nil
}

// OutgoingFriendRequests возвращает исходящие pending-заявки пользователя
func (ds *DirectoryService) OutgoingFriendRequests(ctx context.Context, actorID int64) ([]RequestWithUser, error) {
	var requests []models.FriendRequest
	err := db.GetReadOnlyDB(ctx).
		Where("sender_id = ? AND status = ?", actorID, models.RequestStatusPending).
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get outgoing requests: %w", err)
	}

	cards, err := ds.loadCards(ctx, recipientIDs(requests), friendCardFields)
	if err != nil {
		return nil, err
	}
	result := make([]RequestWithUser, 0, len(requests))
	for _, r := range requests {
		card := cards[r.RecipientID]
		result = append(result, RequestWithUser{FriendRequest: r, Recipient: card})
	}
	return result, nil
}

func (ds *DirectoryService) withSenders(ctx context.Context, requests []models.FriendRequest, fields []string) ([]RequestWithUser, error) {
	cards, err := ds.loadCards(ctx, senderIDs(requests), fields)
	if err != nil {
		return nil, err
	}
	result := make([]RequestWithUser, 0, len(requests))
	for _, r := range requests {
		card := cards[r.SenderID]
		result = append(result, RequestWithUser{FriendRequest: r, Sender: card})
	}
	return result, nil
}

func (ds *DirectoryService) loadCards(ctx context.Context, ids []int64, fields []string) (map[int64]*UserCard, error) {
	cards := make(map[int64]*UserCard, len(ids))
	if len(ids) == 0 {
		return cards, nil
	}
	var users []UserCard
	err := db.GetReadOnlyDB(ctx).
		Model(&models.User{}).
		Where("id IN (?)", ids).
		Select(fields).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load user cards: %w", err)
	}
	for i := range users {
		cards[users[i].ID] = &users[i]
	}
	return cards, nil
}

func senderIDs(requests []models.FriendRequest) []int64 {
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.SenderID)
	}
	return ids
}

func recipientIDs(requests []models.FriendRequest) []int64 {
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.RecipientID)
	}
	return ids
}
