package models

type Subscription struct {
	ID       int     `json:"id"`
	UserID   int     `json:"user_id"`
	MeetupID int     `json:"meetup_id"`
	Meetup   *Meetup `json:"meetup,omitempty"`
}
