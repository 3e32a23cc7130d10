package notifier

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionMail(t *testing.T) {
	t.Parallel()

	job := SubscriptionJob{
		MeetupID:        42,
		MeetupTitle:     "Go Meetup",
		OrganizerName:   "Alice",
		OrganizerEmail:  "alice@example.com",
		SubscriberName:  "Bob",
		SubscriberEmail: "bob@example.com",
	}

	mail := SubscriptionMail(job)

	assert.Equal(t, "Alice <alice@example.com>", mail.To)
	assert.Equal(t, "New subscriber for Go Meetup", mail.Subject)
	assert.Equal(t, "subscription", mail.Template)
	assert.Equal(t, "Bob", mail.Context["subscriber"])
	assert.Equal(t, "bob@example.com", mail.Context["email"])
}

func TestRenderBodyStableOrder(t *testing.T) {
	t.Parallel()

	body := renderBody("greeting", map[string]string{
		"b": "second",
		"a": "first",
	})

	assert.Equal(t, "greeting\n\na: first\nb: second\n", body)
}

func TestParseMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		values  map[string]interface{}
		wantErr bool
		wantTo  string
	}{
		{
			name: "Valid job",
			values: map[string]interface{}{
				"job":     JobKeySubscriptionMail,
				"payload": `{"meetup_title":"Go Meetup","organizer_name":"Alice","organizer_email":"alice@example.com"}`,
			},
			wantTo: "Alice <alice@example.com>",
		},
		{
			name:    "Missing job field",
			values:  map[string]interface{}{"payload": `{}`},
			wantErr: true,
		},
		{
			name: "Unknown job key",
			values: map[string]interface{}{
				"job":     "reminder_mail",
				"payload": `{}`,
			},
			wantErr: true,
		},
		{
			name:    "Missing payload",
			values:  map[string]interface{}{"job": JobKeySubscriptionMail},
			wantErr: true,
		},
		{
			name: "Broken payload",
			values: map[string]interface{}{
				"job":     JobKeySubscriptionMail,
				"payload": `not json`,
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mail, err := parseMessage(redis.XMessage{
				ID:     "1-0",
				Values: tc.values,
			})

			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantTo, mail.To)
		})
	}
}
