package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pulse/models"
)

// VoteStore persists the (user, post) like relation as a strict toggle:
// adding an existing vote and removing an absent one are errors, never
// silent no-ops.
type VoteStore struct {
	db *gorm.DB
}

func NewVoteStore(db *gorm.DB) *VoteStore {
	return &VoteStore{db: db}
}

// Add records that userID likes postID. Returns ErrNotFound if the post does
// not exist and ErrAlreadyVoted if the vote is already present. The composite
// primary key rejects a duplicate insert even if the pre-check raced.
func (s *VoteStore) Add(ctx context.Context, userID, postID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		err := tx.Create(&models.Vote{UserID: userID, PostID: postID}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyVoted
		}
		return err
	})
}

// Remove deletes the vote of userID on postID. Returns ErrNotFound if the
// vote does not exist.
func (s *VoteStore) Remove(ctx context.Context, userID, postID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Vote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of votes on a post.
func (s *VoteStore) Count(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
