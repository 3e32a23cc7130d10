package models

import "time"

type Meetup struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	UserID      int       `json:"user_id"`
	FileID      int       `json:"file_id"`
	User        *User     `json:"user,omitempty"`
}
