package createMeetup

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetapp/internal/http-server/handlers/meetup/createMeetup/mocks"
	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/lib/logger/handlers/slogdiscard"
	"meetapp/internal/models"
	"meetapp/internal/service"
)

func TestCreateMeetupHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 7, 15, 19, 0, 0, 0, time.UTC)

	validBody := `{
		"title": "Go Meetup",
		"description": "Talks about Go",
		"location": "Berlin",
		"date": "2025-07-15T19:00:00Z",
		"file_id": 3
	}`

	validInput := service.CreateMeetupInput{
		Title:       "Go Meetup",
		Description: "Talks about Go",
		Location:    "Berlin",
		Date:        testTime,
		FileID:      3,
	}

	testCases := []struct {
		name           string
		requestBody    string
		userID         int
		mockSetup      func(mock *mocks.MeetupCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			userID:      7,
			mockSetup: func(mock *mocks.MeetupCreator) {
				mock.On("CreateMeetup", validInput, 7).Return(models.Meetup{
					ID:          42,
					Title:       "Go Meetup",
					Description: "Talks about Go",
					Location:    "Berlin",
					Date:        testTime,
					UserID:      7,
					FileID:      3,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"status": "OK",
				"meetup": {
					"id": 42,
					"title": "Go Meetup",
					"description": "Talks about Go",
					"location": "Berlin",
					"date": "2025-07-15T19:00:00Z",
					"user_id": 7,
					"file_id": 3
				}
			}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			userID:         7,
			mockSetup:      func(mock *mocks.MeetupCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"description": "Talks about Go",
				"location": "Berlin",
				"date": "2025-07-15T19:00:00Z",
				"file_id": 3
			}`,
			userID:         7,
			mockSetup:      func(mock *mocks.MeetupCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name: "Missing file_id",
			requestBody: `{
				"title": "Go Meetup",
				"description": "Talks about Go",
				"location": "Berlin",
				"date": "2025-07-15T19:00:00Z"
			}`,
			userID:         7,
			mockSetup:      func(mock *mocks.MeetupCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "FileID")
			},
		},
		{
			name:        "Past date",
			requestBody: validBody,
			userID:      7,
			mockSetup: func(mock *mocks.MeetupCreator) {
				mock.On("CreateMeetup", validInput, 7).Return(models.Meetup{}, service.ErrPastDate)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"past dates are not permitted"}`,
		},
		{
			name:        "Unknown file",
			requestBody: validBody,
			userID:      7,
			mockSetup: func(mock *mocks.MeetupCreator) {
				mock.On("CreateMeetup", validInput, 7).Return(models.Meetup{}, service.ErrFileNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"file does not exist"}`,
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			userID:      7,
			mockSetup: func(mock *mocks.MeetupCreator) {
				mock.On("CreateMeetup", validInput, 7).Return(models.Meetup{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create meetup"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewMeetupCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/meetups", bytes.NewBufferString(tc.requestBody))
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

func TestCreateMeetupNoAuth(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewMeetupCreator(t)
	handler := New(logger, mockCreator)

	req, err := http.NewRequest("POST", "/meetups", bytes.NewBufferString(`{}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"not authorized"}`, rr.Body.String())
}
