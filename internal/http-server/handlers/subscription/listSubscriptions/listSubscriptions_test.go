package listSubscriptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetapp/internal/http-server/handlers/subscription/listSubscriptions/mocks"
	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/lib/logger/handlers/slogdiscard"
	"meetapp/internal/models"
)

func TestListSubscriptionsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 7, 15, 19, 0, 0, 0, time.UTC)

	testSubs := []models.Subscription{
		{
			ID:       1,
			UserID:   7,
			MeetupID: 42,
			Meetup: &models.Meetup{
				ID:    42,
				Title: "Go Meetup",
				Date:  testTime,
			},
		},
		{
			ID:       2,
			UserID:   7,
			MeetupID: 43,
			Meetup: &models.Meetup{
				ID:    43,
				Title: "Cloud Meetup",
				Date:  testTime.Add(24 * time.Hour),
			},
		},
	}

	testCases := []struct {
		name           string
		userID         int
		mockSetup      func(mock *mocks.SubscriptionLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			userID: 7,
			mockSetup: func(mock *mocks.SubscriptionLister) {
				mock.On("ListSubscriptions", 7).Return(testSubs, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response SubscriptionsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Len(t, response.Subscriptions, 2)
				require.NotNil(t, response.Subscriptions[0].Meetup)
				assert.Equal(t, "Go Meetup", response.Subscriptions[0].Meetup.Title)
				assert.Equal(t, "Cloud Meetup", response.Subscriptions[1].Meetup.Title)
			},
		},
		{
			name:   "Empty list",
			userID: 7,
			mockSetup: func(mock *mocks.SubscriptionLister) {
				mock.On("ListSubscriptions", 7).Return([]models.Subscription{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response SubscriptionsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Empty(t, response.Subscriptions)
			},
		},
		{
			name:   "Internal server error",
			userID: 7,
			mockSetup: func(mock *mocks.SubscriptionLister) {
				mock.On("ListSubscriptions", 7).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list subscriptions"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewSubscriptionLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", "/subscription", nil)
			require.NoError(t, err)
			req = req.WithContext(mwauth.WithUserID(req.Context(), tc.userID))

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestListSubscriptionsNoAuth(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockLister := mocks.NewSubscriptionLister(t)
	handler := New(logger, mockLister)

	req, err := http.NewRequest("GET", "/subscription", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"not authorized"}`, rr.Body.String())
}
