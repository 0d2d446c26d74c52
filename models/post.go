package models

import (
	"time"

	"yatube/db"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:feed_order"`
	UpdatedAt int64
	UserID    uint64 `gorm:"index"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
	ImagePath string `gorm:"type:varchar(300)"`
	ThumbPath string `gorm:"type:varchar(300)"`
}

const previewLength = 15

// Preview is the short form shown in listings and logs.
func (p Post) Preview() string {
	runes := []rune(p.Text)
	if len(runes) <= previewLength {
		return p.Text
	}
	return string(runes[:previewLength])
}

func (p Post) HasImage() bool {
	return p.ImagePath != ""
}

func (p Post) CreatedDate() string {
	return time.Unix(p.CreatedAt, 0).Format("2 Jan 2006 15:04")
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("User").Preload("Group").First(&p, id).Error
	return
}

// PostComments returns the post's comments, oldest first.
func PostComments(postID uint64) (comments []Comment, err error) {
	err = db.Instance.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return
}
