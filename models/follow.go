package models

import (
	"errors"

	"yatube/db"

	"gorm.io/gorm"
)

// Follow is a directed (follower, followee) pair. The unique index is
// the backstop for idempotency, FollowAuthor never relies on it alone.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uniq_follow_pair"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"not null;index;uniqueIndex:uniq_follow_pair"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor creates the pair unless it already exists. Following
// yourself is a no-op rather than an error.
func FollowAuthor(userID, authorID uint64) error {
	if userID == authorID {
		return nil
	}
	var follow Follow
	err := db.Instance.Where("user_id = ? AND author_id = ?", userID, authorID).First(&follow).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	follow = Follow{UserID: userID, AuthorID: authorID}
	return db.Instance.Create(&follow).Error
}

// UnfollowAuthor removes the pair if present. Absent pairs are fine.
func UnfollowAuthor(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) bool {
	if userID == 0 {
		return false
	}
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}
