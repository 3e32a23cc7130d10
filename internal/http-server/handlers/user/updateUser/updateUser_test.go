package updateUser

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetapp/internal/http-server/handlers/user/updateUser/mocks"
	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/lib/logger/handlers/slogdiscard"
	"meetapp/internal/models"
	"meetapp/internal/service"
	"meetapp/internal/storage"
)

func strPtr(s string) *string { return &s }

func TestUpdateUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	nameOnlyBody := `{"name": "Alice Cooper"}`
	nameOnlyInput := service.UpdateUserInput{Name: strPtr("Alice Cooper")}

	passwordBody := `{"old_password": "secret123", "password": "newsecret"}`
	passwordInput := service.UpdateUserInput{
		OldPassword: strPtr("secret123"),
		Password:    strPtr("newsecret"),
	}

	testCases := []struct {
		name           string
		requestBody    string
		userID         int
		mockSetup      func(mock *mocks.UserUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success name only",
			requestBody: nameOnlyBody,
			userID:      1,
			mockSetup: func(mock *mocks.UserUpdater) {
				mock.On("UpdateUser", 1, nameOnlyInput).Return(models.User{
					ID:    1,
					Name:  "Alice Cooper",
					Email: "alice@example.com",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"status": "OK",
				"user": {"id": 1, "name": "Alice Cooper", "email": "alice@example.com"}
			}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			userID:         1,
			mockSetup:      func(mock *mocks.UserUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "New password too short",
			requestBody:    `{"old_password": "secret123", "password": "abc"}`,
			userID:         1,
			mockSetup:      func(mock *mocks.UserUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Password")
			},
		},
		{
			name:        "Wrong old password",
			requestBody: passwordBody,
			userID:      1,
			mockSetup: func(mock *mocks.UserUpdater) {
				mock.On("UpdateUser", 1, passwordInput).Return(models.User{}, service.ErrWrongPassword)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"wrong password"}`,
		},
		{
			name:        "Email already taken",
			requestBody: `{"email": "taken@example.com"}`,
			userID:      1,
			mockSetup: func(mock *mocks.UserUpdater) {
				mock.On("UpdateUser", 1, service.UpdateUserInput{Email: strPtr("taken@example.com")}).
					Return(models.User{}, storage.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"email already taken"}`,
		},
		{
			name:        "Internal server error",
			requestBody: nameOnlyBody,
			userID:      1,
			mockSetup: func(mock *mocks.UserUpdater) {
				mock.On("UpdateUser", 1, nameOnlyInput).Return(models.User{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update user"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewUserUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			req, err := http.NewRequest("PUT", "/users", bytes.NewBufferString(tc.requestBody))
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

func TestUpdateUserNoAuth(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockUpdater := mocks.NewUserUpdater(t)
	handler := New(logger, mockUpdater)

	req, err := http.NewRequest("PUT", "/users", bytes.NewBufferString(`{}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"not authorized"}`, rr.Body.String())
}
