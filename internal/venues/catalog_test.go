package venues_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"holidaze/internal/lib/logger/handlers/slogdiscard"
	"holidaze/internal/models"
	"holidaze/internal/noroff"
	"holidaze/internal/session"
	"holidaze/internal/venues"
	"holidaze/internal/venues/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func managerSession() *session.Session {
	return &session.Session{
		ID:    "sid",
		Token: "token",
		User:  models.Profile{Name: "kari", VenueManager: true},
	}
}

func TestCatalog_SearchCachesSnapshot(t *testing.T) {
	t.Parallel()

	api := mocks.NewAPI(t)
	api.On("ListAllVenues", mock.Anything).
		Return([]models.Venue{
			{ID: "a", Name: "Cabin", Price: 100},
			{ID: "b", Name: "Loft", Price: 50},
		}, nil).
		Once()

	c := venues.NewCatalog(api, time.Minute, slogdiscard.NewDiscardLogger())

	res, err := c.Search(context.Background(), venues.Query{Sort: venues.SortPriceLow, Page: 1})
	require.NoError(t, err)
	require.Len(t, res.Venues, 2)
	assert.Equal(t, "b", res.Venues[0].ID)

	res, err = c.Search(context.Background(), venues.Query{Search: "cabin", Page: 1})
	require.NoError(t, err)
	require.Len(t, res.Venues, 1)
	assert.Equal(t, "a", res.Venues[0].ID)
}

func TestCatalog_SharedLoadOutlivesCancelledCaller(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	loadErr := make(chan error, 1)

	api := mocks.NewAPI(t)
	api.On("ListAllVenues", mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
			loadErr <- args.Get(0).(context.Context).Err()
		}).
		Return([]models.Venue{{ID: "a", Name: "Cabin"}, {ID: "b", Name: "Loft"}}, nil).
		Once()

	c := venues.NewCatalog(api, time.Minute, slogdiscard.NewDiscardLogger())

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := c.Search(ctxA, venues.Query{Page: 1})
		errA <- err
	}()
	<-started

	type result struct {
		res venues.Result
		err error
	}
	resB := make(chan result, 1)
	go func() {
		res, err := c.Search(context.Background(), venues.Query{Page: 1})
		resB <- result{res, err}
	}()

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	assert.NoError(t, <-loadErr)

	b := <-resB
	require.NoError(t, b.err)
	assert.Len(t, b.res.Venues, 2)
}

func TestCatalog_SearchError(t *testing.T) {
	t.Parallel()

	api := mocks.NewAPI(t)
	api.On("ListAllVenues", mock.Anything).Return(nil, &noroff.APIError{Status: 500, Message: "boom"}).Once()

	c := venues.NewCatalog(api, time.Minute, slogdiscard.NewDiscardLogger())

	_, err := c.Search(context.Background(), venues.Query{Page: 1})

	var apiErr *noroff.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestCatalog_CreateInvalidatesSnapshot(t *testing.T) {
	t.Parallel()

	api := mocks.NewAPI(t)
	api.On("ListAllVenues", mock.Anything).Return([]models.Venue{{ID: "a", Name: "Cabin"}}, nil).Twice()

	in := models.VenueInput{Name: "New", Description: "d", MaxGuests: 2, Media: []models.Media{{URL: "https://img.example/x.jpg"}}}
	api.On("CreateVenue", mock.Anything, "token", in).Return(&models.Venue{ID: "n", Name: "New"}, nil).Once()

	c := venues.NewCatalog(api, time.Hour, slogdiscard.NewDiscardLogger())

	_, err := c.Search(context.Background(), venues.Query{Page: 1})
	require.NoError(t, err)

	v, err := c.Create(context.Background(), managerSession(), in)
	require.NoError(t, err)
	assert.Equal(t, "n", v.ID)

	_, err = c.Search(context.Background(), venues.Query{Page: 1})
	require.NoError(t, err)
}

func TestCatalog_ManagerRoleRequired(t *testing.T) {
	t.Parallel()

	api := mocks.NewAPI(t)
	c := venues.NewCatalog(api, time.Minute, slogdiscard.NewDiscardLogger())

	guest := &session.Session{Token: "token", User: models.Profile{Name: "ola"}}

	_, err := c.Managed(context.Background(), guest)
	assert.ErrorIs(t, err, venues.ErrNotManager)

	_, err = c.Create(context.Background(), guest, models.VenueInput{})
	assert.ErrorIs(t, err, venues.ErrNotManager)

	_, err = c.Update(context.Background(), guest, "a", models.VenueInput{})
	assert.ErrorIs(t, err, venues.ErrNotManager)

	err = c.Delete(context.Background(), guest, "a")
	assert.ErrorIs(t, err, venues.ErrNotManager)
}

func TestCatalog_Managed(t *testing.T) {
	t.Parallel()

	api := mocks.NewAPI(t)
	api.On("VenuesByProfile", mock.Anything, "token", "kari").
		Return([]models.Venue{{ID: "a", Name: "Cabin"}}, nil).
		Once()

	c := venues.NewCatalog(api, time.Minute, slogdiscard.NewDiscardLogger())

	vs, err := c.Managed(context.Background(), managerSession())
	require.NoError(t, err)
	assert.Len(t, vs, 1)
}

func TestCatalog_UpdateChecksOwnership(t *testing.T) {
	t.Parallel()

	in := models.VenueInput{Name: "Renamed"}

	cases := []struct {
		name    string
		owner   *models.Venue
		getErr  error
		wantErr error
		update  bool
	}{
		{
			name:   "owner may update",
			owner:  &models.Venue{ID: "a", Name: "Cabin", Owner: &models.Profile{Name: "kari"}},
			update: true,
		},
		{
			name:    "other manager is rejected",
			owner:   &models.Venue{ID: "a", Name: "Cabin", Owner: &models.Profile{Name: "someone"}},
			wantErr: venues.ErrNotOwner,
		},
		{
			name:    "missing owner is rejected",
			owner:   &models.Venue{ID: "a", Name: "Cabin"},
			wantErr: venues.ErrNotOwner,
		},
		{
			name:    "unknown venue",
			getErr:  &noroff.APIError{Status: 404, Message: "No venue with such ID"},
			wantErr: venues.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			api := mocks.NewAPI(t)
			api.On("GetVenue", mock.Anything, "token", "a", noroff.VenueOptions{Owner: true}).
				Return(tc.owner, tc.getErr).
				Once()
			if tc.update {
				api.On("UpdateVenue", mock.Anything, "token", "a", in).
					Return(&models.Venue{ID: "a", Name: "Renamed"}, nil).
					Once()
			}

			c := venues.NewCatalog(api, time.Minute, slogdiscard.NewDiscardLogger())

			v, err := c.Update(context.Background(), managerSession(), "a", in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Renamed", v.Name)
		})
	}
}

func TestCatalog_Delete(t *testing.T) {
	t.Parallel()

	api := mocks.NewAPI(t)
	api.On("GetVenue", mock.Anything, "token", "a", noroff.VenueOptions{Owner: true}).
		Return(&models.Venue{ID: "a", Name: "Cabin", Owner: &models.Profile{Name: "kari"}}, nil).
		Once()
	api.On("DeleteVenue", mock.Anything, "token", "a").Return(errors.New("upstream down")).Once()

	c := venues.NewCatalog(api, time.Minute, slogdiscard.NewDiscardLogger())

	err := c.Delete(context.Background(), managerSession(), "a")
	assert.EqualError(t, err, "venues.Catalog.Delete: upstream down")
}
