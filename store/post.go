package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pulse/models"
)

// PostWithVotes is a post annotated with its total vote count. The field
// names mirror the JSON shape of the list and single-post endpoints.
type PostWithVotes struct {
	Post  models.Post `json:"Post"`
	Votes int64       `json:"votes"`
}

// postRow is the scan target for the left-join vote aggregation.
type postRow struct {
	models.Post
	Votes int64
}

// PostStore persists posts and answers vote-count-annotated reads.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

func (s *PostStore) withVotes(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.*, count(votes.user_id) AS votes").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id").
		Group("posts.id")
}

// List returns posts whose title contains search (empty matches all), each
// with its vote count and owner, paginated by limit/offset.
func (s *PostStore) List(ctx context.Context, search string, limit, offset int) ([]PostWithVotes, error) {
	var rows []postRow
	err := s.withVotes(ctx).
		Where("posts.title LIKE ?", "%"+search+"%").
		Order("posts.id").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	owners, err := s.ownersByID(ctx, rows)
	if err != nil {
		return nil, err
	}

	results := make([]PostWithVotes, len(rows))
	for i, row := range rows {
		post := row.Post
		if owner, ok := owners[post.OwnerID]; ok {
			post.Owner = owner
		}
		results[i] = PostWithVotes{Post: post, Votes: row.Votes}
	}
	return results, nil
}

// Create persists a new post and returns it with the server-assigned id,
// timestamp and owner attached.
func (s *PostStore) Create(ctx context.Context, title, content string, published bool, ownerID uint) (*models.Post, error) {
	post := &models.Post{Title: title, Content: content, Published: published, OwnerID: ownerID}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}

	var owner models.User
	if err := s.db.WithContext(ctx).First(&owner, ownerID).Error; err == nil {
		post.Owner = &owner
	}
	return post, nil
}

// Get returns the post with the given id and its vote count, or ErrNotFound.
func (s *PostStore) Get(ctx context.Context, id uint) (*PostWithVotes, error) {
	var row postRow
	err := s.withVotes(ctx).Where("posts.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	post := row.Post
	var owner models.User
	if err := s.db.WithContext(ctx).First(&owner, post.OwnerID).Error; err == nil {
		post.Owner = &owner
	}
	return &PostWithVotes{Post: post, Votes: row.Votes}, nil
}

// Update overwrites the mutable fields of a post. The existence check runs
// before the ownership check, and both happen in the same transaction as the
// write.
func (s *PostStore) Update(ctx context.Context, id uint, title, content string, published bool, callerID uint) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if post.OwnerID != callerID {
			return ErrForbidden
		}

		post.Title = title
		post.Content = content
		post.Published = published
		return tx.Model(&post).Select("title", "content", "published").Updates(&post).Error
	})
	if err != nil {
		return nil, err
	}

	var owner models.User
	if err := s.db.WithContext(ctx).First(&owner, post.OwnerID).Error; err == nil {
		post.Owner = &owner
	}
	return &post, nil
}

// Delete removes a post permanently, cascading to its votes. Same
// existence/ownership checks as Update.
func (s *PostStore) Delete(ctx context.Context, id uint, callerID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if post.OwnerID != callerID {
			return ErrForbidden
		}
		return tx.Delete(&post).Error
	})
}

// ownersByID loads the owning users for a batch of rows keyed by id.
func (s *PostStore) ownersByID(ctx context.Context, rows []postRow) (map[uint]*models.User, error) {
	ids := make([]uint, 0, len(rows))
	seen := make(map[uint]bool)
	for _, row := range rows {
		if !seen[row.OwnerID] {
			seen[row.OwnerID] = true
			ids = append(ids, row.OwnerID)
		}
	}
	if len(ids) == 0 {
		return map[uint]*models.User{}, nil
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	owners := make(map[uint]*models.User, len(users))
	for i := range users {
		owners[users[i].ID] = &users[i]
	}
	return owners, nil
}
