package models

// Vote marks that a user likes a post. Existence is the only state; the
// composite primary key guarantees at most one row per (user, post) pair.
type Vote struct {
	UserID uint  `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID uint  `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post   *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
