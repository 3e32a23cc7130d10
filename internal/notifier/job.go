// Package notifier hands subscription notifications off to a Redis stream and
// delivers them to the meetup organizer by mail from a background worker.
package notifier

const (
	// StreamKey is the Redis stream for notification jobs.
	StreamKey = "stream:notification_jobs"

	// ConsumerGroup is the Redis consumer group name.
	ConsumerGroup = "mail_workers"

	// JobKeySubscriptionMail identifies the new-subscription mail job.
	JobKeySubscriptionMail = "subscription_mail"
)

// SubscriptionJob carries everything the mail worker needs, so it never has to
// read the stores.
type SubscriptionJob struct {
	MeetupID        int    `json:"meetup_id"`
	MeetupTitle     string `json:"meetup_title"`
	OrganizerName   string `json:"organizer_name"`
	OrganizerEmail  string `json:"organizer_email"`
	SubscriberName  string `json:"subscriber_name"`
	SubscriberEmail string `json:"subscriber_email"`
}
