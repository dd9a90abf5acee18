package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"holidaze/internal/config"
	"holidaze/internal/lib/logger/handlers/slogdiscard"
	"holidaze/internal/models"
	"holidaze/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) (*Storage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	s, err := New(&config.Redis{Addr: mr.Addr()}, slogdiscard.NewDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, mr
}

func testSession(ttl time.Duration) *session.Session {
	return &session.Session{
		ID:        "sid-1",
		Token:     "token",
		User:      models.Profile{Name: "kari", Email: "kari@stud.noroff.no", VenueManager: true},
		ExpiresAt: time.Now().Add(ttl).UTC().Truncate(time.Second),
	}
}

func TestNewUnreachable(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = New(&config.Redis{Addr: addr}, slogdiscard.NewDiscardLogger())
	assert.Error(t, err)
}

func TestSaveGetDelete(t *testing.T) {
	t.Parallel()

	s, mr := newStorage(t)
	ctx := context.Background()
	sess := testSession(time.Hour)

	require.NoError(t, s.Save(ctx, sess))

	ttl := mr.TTL(sessionKey(sess.ID))
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	got, err := s.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, got.Token)
	assert.Equal(t, sess.User, got.User)
	assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, s.Delete(ctx, sess.ID))
	assert.False(t, mr.Exists(sessionKey(sess.ID)))

	_, err = s.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestGetUnknown(t *testing.T) {
	t.Parallel()

	s, _ := newStorage(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestGetUndecodable(t *testing.T) {
	t.Parallel()

	s, mr := newStorage(t)
	require.NoError(t, mr.Set(sessionKey("bad"), "{not json"))

	_, err := s.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNotFound)
}

func TestSaveExpiresWithSession(t *testing.T) {
	t.Parallel()

	s, mr := newStorage(t)
	ctx := context.Background()
	sess := testSession(time.Hour)

	require.NoError(t, s.Save(ctx, sess))

	mr.FastForward(61 * time.Minute)

	_, err := s.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSaveAlreadyExpired(t *testing.T) {
	t.Parallel()

	s, mr := newStorage(t)
	sess := testSession(-time.Minute)

	err := s.Save(context.Background(), sess)

	assert.ErrorIs(t, err, session.ErrExpired)
	assert.False(t, mr.Exists(sessionKey(sess.ID)))
}

type failPublish struct{}

func (failPublish) DialHook(next redis.DialHook) redis.DialHook { return next }

func (failPublish) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if cmd.Name() == "publish" {
			err := errors.New("publish unavailable")
			cmd.SetErr(err)
			return err
		}
		return next(ctx, cmd)
	}
}

func (failPublish) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestSaveSurvivesPublishFailure(t *testing.T) {
	t.Parallel()

	s, mr := newStorage(t)
	s.Client.AddHook(failPublish{})
	ctx := context.Background()
	sess := testSession(time.Hour)

	require.NoError(t, s.Save(ctx, sess))
	assert.True(t, mr.Exists(sessionKey(sess.ID)))

	require.NoError(t, s.Delete(ctx, sess.ID))
	assert.False(t, mr.Exists(sessionKey(sess.ID)))
}

func TestSubscribeReceivesChanges(t *testing.T) {
	t.Parallel()

	s, _ := newStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Subscribe(ctx)
	require.NoError(t, err)

	sess := testSession(time.Hour)
	require.NoError(t, s.Save(ctx, sess))
	require.NoError(t, s.Delete(ctx, sess.ID))

	want := []session.Event{
		{ID: sess.ID, Kind: session.EventSaved},
		{ID: sess.ID, Kind: session.EventCleared},
	}
	for _, w := range want {
		select {
		case ev := <-events:
			assert.Equal(t, w, ev)
		case <-time.After(2 * time.Second):
			t.Fatalf("no %s event received", w.Kind)
		}
	}

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after cancel")
	}
}
