package listUsers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetapp/internal/http-server/handlers/user/listUsers/mocks"
	"meetapp/internal/lib/logger/handlers/slogdiscard"
	"meetapp/internal/models"
)

func TestListUsersHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testUsers := []models.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.UsersLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(mock *mocks.UsersLister) {
				mock.On("ListUsers").Return(testUsers, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response UsersResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Len(t, response.Users, 2)
				assert.Equal(t, "Alice", response.Users[0].Name)
				assert.Equal(t, "bob@example.com", response.Users[1].Email)
			},
		},
		{
			name: "Password hash never leaks",
			mockSetup: func(mock *mocks.UsersLister) {
				mock.On("ListUsers").Return([]models.User{
					{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$10$abcdef"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, "$2a$10$abcdef")
				assert.NotContains(t, body, "password")
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(mock *mocks.UsersLister) {
				mock.On("ListUsers").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list users"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewUsersLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", "/users", nil)
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
