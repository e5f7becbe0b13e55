package entity

import "time"

// Post is a blog entry owned by a single user.
type Post struct {
	ID         int64
	Title      string
	Image      string
	Content    string
	Category   string
	UserID     int64
	User       *User // Author; populated on reads.
	IsActive   bool
	IsTrending bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOwnedBy reports whether userID authored the post.
func (p *Post) IsOwnedBy(userID int64) bool {
	return p.UserID == userID
}

// PostFilter narrows post listings. Nil fields are not applied; only active posts are listed.
type PostFilter struct {
	UserID     *int64
	IsTrending *bool
}
