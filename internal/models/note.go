package models

import "time"

type Note struct {
	ID        int       `json:"_id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedOn time.Time `json:"createdOn"`
}
