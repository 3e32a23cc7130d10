package listMeetups

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetapp/internal/http-server/handlers/meetup/listMeetups/mocks"
	"meetapp/internal/lib/logger/handlers/slogdiscard"
	"meetapp/internal/models"
)

func TestListMeetupsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 7, 15, 19, 0, 0, 0, time.UTC)
	filterDate := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	testMeetups := []models.Meetup{
		{
			ID:       1,
			Title:    "Go Meetup",
			Location: "Berlin",
			Date:     testTime,
			UserID:   7,
			FileID:   3,
		},
		{
			ID:       2,
			Title:    "Cloud Meetup",
			Location: "Munich",
			Date:     testTime.Add(2 * time.Hour),
			UserID:   8,
			FileID:   4,
		},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.MeetupLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success without filters",
			url:  "/meetups",
			mockSetup: func(mock *mocks.MeetupLister) {
				mock.On("ListMeetups", (*time.Time)(nil), 1).Return(testMeetups, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response MeetupsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Len(t, response.Meetups, 2)
				assert.Equal(t, "Go Meetup", response.Meetups[0].Title)
				assert.Equal(t, "Cloud Meetup", response.Meetups[1].Title)
			},
		},
		{
			name: "Success with date and page",
			url:  "/meetups?date=2025-07-15&page=2",
			mockSetup: func(mock *mocks.MeetupLister) {
				mock.On("ListMeetups", &filterDate, 2).Return([]models.Meetup{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response MeetupsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Empty(t, response.Meetups)
			},
		},
		{
			name:           "Invalid date format",
			url:            "/meetups?date=15-07-2025",
			mockSetup:      func(mock *mocks.MeetupLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid date format, expected YYYY-MM-DD"}`,
		},
		{
			name:           "Invalid page number",
			url:            "/meetups?page=0",
			mockSetup:      func(mock *mocks.MeetupLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid page number"}`,
		},
		{
			name:           "Non-numeric page",
			url:            "/meetups?page=abc",
			mockSetup:      func(mock *mocks.MeetupLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid page number"}`,
		},
		{
			name: "Internal server error",
			url:  "/meetups",
			mockSetup: func(mock *mocks.MeetupLister) {
				mock.On("ListMeetups", (*time.Time)(nil), 1).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list meetups"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewMeetupLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

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
