package database

import (
	"github.com/google/uuid"
	"github.com/plateful-app/backend/models"
	"gorm.io/gorm"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db}
}

// Exists reports whether the follower -> author edge is present
func (r *SubscriptionRepo) Exists(followerID, authorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a new subscription edge
func (r *SubscriptionRepo) Add(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

// Delete removes the follower -> author edge and reports how many rows went away
func (r *SubscriptionRepo) Delete(followerID, authorID uuid.UUID) (int64, error) {
	res := r.db.Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&models.Subscription{})
	return res.RowsAffected, res.Error
}

// AuthorsOf returns every author the follower is subscribed to,
// ordered by subscription recency
func (r *SubscriptionRepo) AuthorsOf(followerID uuid.UUID) ([]*models.User, error) {
	var authors []*models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.follower_id = ?", followerID).
		Order("subscriptions.created_at DESC").
		Find(&authors).Error
	return authors, err
}

// FollowedSet returns, for one follower and a batch of author ids, the
// subset that the follower is subscribed to. One query per batch; this
// is what keeps is_subscribed out of N+1 territory on list responses.
func (r *SubscriptionRepo) FollowedSet(followerID uuid.UUID, authorIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	followed := make(map[uuid.UUID]bool, len(authorIDs))
	if len(authorIDs) == 0 {
		return followed, nil
	}
	var ids []uuid.UUID
	err := r.db.Model(&models.Subscription{}).
		Where("follower_id = ? AND author_id IN ?", followerID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		followed[id] = true
	}
	return followed, nil
}
