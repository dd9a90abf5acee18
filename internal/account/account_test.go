package account_test

import (
	"context"
	"errors"
	"testing"

	"holidaze/internal/account"
	"holidaze/internal/account/mocks"
	"holidaze/internal/lib/logger/handlers/slogdiscard"
	"holidaze/internal/models"
	"holidaze/internal/noroff"
	"holidaze/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*account.Service, *mocks.API, *mocks.Sessions) {
	t.Helper()

	api := mocks.NewAPI(t)
	sessions := mocks.NewSessions(t)

	return account.New(api, sessions, slogdiscard.NewDiscardLogger()), api, sessions
}

func TestLogin(t *testing.T) {
	t.Parallel()

	creds := models.Credentials{Email: "kari@stud.noroff.no", Password: "password1"}

	cases := []struct {
		name       string
		payload    models.Profile
		profile    *models.Profile
		profileErr error
		redirect   string
	}{
		{
			name:     "manager from profile lookup",
			payload:  models.Profile{Name: "kari"},
			profile:  &models.Profile{Name: "kari", VenueManager: true},
			redirect: account.RouteManagerHome,
		},
		{
			name:     "guest",
			payload:  models.Profile{Name: "kari"},
			profile:  &models.Profile{Name: "kari"},
			redirect: account.RouteUserHome,
		},
		{
			name:       "lookup fails, login payload is used",
			payload:    models.Profile{Name: "kari", VenueManager: true},
			profileErr: errors.New("timeout"),
			redirect:   account.RouteManagerHome,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, api, sessions := newService(t)

			api.On("Login", mock.Anything, creds).
				Return(&models.AuthResult{Profile: tc.payload, AccessToken: "jwt"}, nil).
				Once()
			api.On("GetProfile", mock.Anything, "jwt", "kari").Return(tc.profile, tc.profileErr).Once()

			sessions.On("Create", mock.Anything, "jwt", mock.AnythingOfType("models.Profile")).
				Return(func(_ context.Context, token string, user models.Profile) (*session.Session, error) {
					return &session.Session{ID: "sid", Token: token, User: user}, nil
				}).
				Once()

			res, err := svc.Login(context.Background(), creds)
			require.NoError(t, err)

			assert.Equal(t, "sid", res.Session.ID)
			assert.Equal(t, "kari", res.Session.User.Name)
			assert.Equal(t, tc.redirect, res.Redirect)
		})
	}
}

func TestLogin_Rejected(t *testing.T) {
	t.Parallel()

	svc, api, _ := newService(t)

	api.On("Login", mock.Anything, mock.Anything).
		Return(nil, &noroff.APIError{Status: 401, Message: "Invalid email or password"}).
		Once()

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.no", Password: "wrongpass"})

	var apiErr *noroff.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	svc, api, sessions := newService(t)

	reg := models.Registration{Name: "kari", Email: "kari@stud.noroff.no", Password: "password1", VenueManager: true}

	api.On("Register", mock.Anything, reg).Return(&models.Profile{Name: "kari", VenueManager: true}, nil).Once()
	api.On("Login", mock.Anything, models.Credentials{Email: reg.Email, Password: reg.Password}).
		Return(&models.AuthResult{Profile: models.Profile{Name: "kari", VenueManager: true}, AccessToken: "jwt"}, nil).
		Once()
	api.On("GetProfile", mock.Anything, "jwt", "kari").Return(&models.Profile{Name: "kari", VenueManager: true}, nil).Once()
	sessions.On("Create", mock.Anything, "jwt", mock.Anything).Return(&session.Session{ID: "sid"}, nil).Once()

	res, err := svc.Register(context.Background(), reg)
	require.NoError(t, err)

	assert.Equal(t, account.RouteManagerHome, res.Redirect)
}

func TestRegister_Conflict(t *testing.T) {
	t.Parallel()

	svc, api, _ := newService(t)

	api.On("Register", mock.Anything, mock.Anything).
		Return(nil, &noroff.APIError{Status: 400, Message: "Profile already exists"}).
		Once()

	_, err := svc.Register(context.Background(), models.Registration{Name: "kari"})
	assert.ErrorContains(t, err, "Profile already exists")
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()

	svc, api, sessions := newService(t)
	sess := &session.Session{ID: "sid", Token: "jwt", User: models.Profile{Name: "kari"}}

	api.On("DeleteProfile", mock.Anything, "jwt").Return(nil).Once()
	sessions.On("Destroy", mock.Anything, "sid").Return(nil).Once()

	require.NoError(t, svc.DeleteAccount(context.Background(), sess))
}

func TestDeleteAccount_KeepsSessionOnFailure(t *testing.T) {
	t.Parallel()

	svc, api, _ := newService(t)
	sess := &session.Session{ID: "sid", Token: "jwt", User: models.Profile{Name: "kari"}}

	api.On("DeleteProfile", mock.Anything, "jwt").Return(errors.New("boom")).Once()

	assert.Error(t, svc.DeleteAccount(context.Background(), sess))
}

func TestUpdateProfile_RefreshesSession(t *testing.T) {
	t.Parallel()

	svc, api, sessions := newService(t)
	sess := &session.Session{ID: "sid", Token: "jwt", User: models.Profile{Name: "kari"}}

	bio := "Cabins by the fjord"
	upd := models.ProfileUpdate{Bio: &bio}
	updated := &models.Profile{Name: "kari", Bio: bio}

	api.On("UpdateProfile", mock.Anything, "jwt", "kari", upd).Return(updated, nil).Once()
	sessions.On("UpdateUser", mock.Anything, "sid", *updated).Return(&session.Session{ID: "sid", User: *updated}, nil).Once()

	p, err := svc.UpdateProfile(context.Background(), sess, upd)
	require.NoError(t, err)
	assert.Equal(t, bio, p.Bio)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	svc, _, sessions := newService(t)
	sessions.On("Destroy", mock.Anything, "sid").Return(nil).Once()

	require.NoError(t, svc.Logout(context.Background(), "sid"))
}

func TestHomeRoute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, account.RouteManagerHome, account.HomeRoute(models.Profile{VenueManager: true}))
	assert.Equal(t, account.RouteUserHome, account.HomeRoute(models.Profile{}))
}
