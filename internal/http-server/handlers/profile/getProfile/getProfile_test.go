package getProfile

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"holidaze/internal/http-server/handlers/profile/getProfile/mocks"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/logger/handlers/slogdiscard"
	"holidaze/internal/models"
	"holidaze/internal/noroff"
	"holidaze/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetProfileHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := &session.Session{ID: "sid", Token: "jwt", User: models.Profile{Name: "ola"}}

	testCases := []struct {
		name           string
		session        *session.Session
		mockSetup      func(m *mocks.ProfileProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			session: sess,
			mockSetup: func(m *mocks.ProfileProvider) {
				m.On("Profile", mock.Anything, sess).Return(&models.Profile{
					Name:  "ola",
					Email: "ola@stud.noroff.no",
					Count: &models.Count{Bookings: 2},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","profile":{"name":"ola","email":"ola@stud.noroff.no","venueManager":false,` +
				`"_count":{"venues":0,"bookings":2}}}`,
		},
		{
			name:           "Anonymous",
			mockSetup:      func(m *mocks.ProfileProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"please log in","redirect":"/login/user"}`,
		},
		{
			name:    "Token rejected upstream",
			session: sess,
			mockSetup: func(m *mocks.ProfileProvider) {
				m.On("Profile", mock.Anything, sess).
					Return(nil, &noroff.APIError{Status: 401, Message: "Invalid token"}).
					Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"Invalid token"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewProfileProvider(t)
			tc.mockSetup(provider)

			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tc.session != nil {
				req = req.WithContext(auth.WithSession(req.Context(), tc.session))
			}

			rr := httptest.NewRecorder()
			New(logger, provider).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
