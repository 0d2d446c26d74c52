package models

import (
	"yatube/config"
	"yatube/db"
	"yatube/utils"

	"gorm.io/gorm"
)

type FeedScope int

const (
	FeedGlobal FeedScope = iota
	FeedGroup
	FeedAuthor
	FeedFollowing
)

// Feed selects the posts visible in one of the four contexts. Ordering
// is newest-first; posts created in the same second resolve to the
// latest insert first, so paging stays stable.
type Feed struct {
	Scope    FeedScope
	GroupID  uint64 // FeedGroup
	AuthorID uint64 // FeedAuthor
	ViewerID uint64 // FeedFollowing
}

func (f Feed) query() *gorm.DB {
	tx := db.Instance.Model(&Post{}).Preload("User").Preload("Group")
	switch f.Scope {
	case FeedGroup:
		tx = tx.Where("group_id = ?", f.GroupID)
	case FeedAuthor:
		tx = tx.Where("user_id = ?", f.AuthorID)
	case FeedFollowing:
		followed := db.Instance.Model(&Follow{}).
			Select("author_id").
			Where("user_id = ?", f.ViewerID)
		tx = tx.Where("user_id IN (?)", followed)
	}
	return tx.Order("created_at DESC, id DESC")
}

// Page returns one page of the feed for a raw ?page= value.
func (f Feed) Page(rawPage string) ([]Post, utils.Page, error) {
	var total int64
	if err := f.query().Count(&total).Error; err != nil {
		return nil, utils.Page{}, err
	}
	tx, page := utils.Paginated(f.query(), rawPage, config.POSTS_PER_PAGE, total)
	var posts []Post
	if err := tx.Find(&posts).Error; err != nil {
		return nil, page, err
	}
	return posts, page, nil
}
