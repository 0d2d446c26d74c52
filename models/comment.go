package models

import "time"

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    uint64 `gorm:"index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

func (c Comment) CreatedDate() string {
	return time.Unix(c.CreatedAt, 0).Format("2 Jan 2006 15:04")
}
