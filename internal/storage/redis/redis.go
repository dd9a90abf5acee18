package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"holidaze/internal/config"
	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/session"

	"github.com/redis/go-redis/v9"
)

const (
	sessionPrefix  = "holidaze:session:"
	sessionChannel = "holidaze:session-events"
)

var (
	_ session.Store      = (*Storage)(nil)
	_ session.Subscriber = (*Storage)(nil)
)

type Storage struct {
	Client *redis.Client
	log    *slog.Logger
}

func New(cfg *config.Redis, log *slog.Logger) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Storage{Client: client, log: log}, nil
}

func (s *Storage) Close() error {
	return s.Client.Close()
}

func sessionKey(id string) string {
	return sessionPrefix + id
}

func (s *Storage) Get(ctx context.Context, id string) (*session.Session, error) {
	raw, err := s.Client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess session.Session
	if err = json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &sess, nil
}

// Save stores the session until its expiry and announces the change. A failed
// announcement is logged only: the session is stored and watchers fall back to polling.
func (s *Storage) Save(ctx context.Context, sess *session.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return session.ErrExpired
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err = s.Client.Set(ctx, sessionKey(sess.ID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.publish(ctx, session.Event{ID: sess.ID, Kind: session.EventSaved})

	return nil
}

func (s *Storage) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.publish(ctx, session.Event{ID: id, Kind: session.EventCleared})

	return nil
}

func (s *Storage) publish(ctx context.Context, ev session.Event) {
	const op = "storage.redis.publish"

	raw, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("failed to encode session event", slog.String("op", op), sl.Err(err))
		return
	}

	if err = s.Client.Publish(ctx, sessionChannel, raw).Err(); err != nil {
		s.log.Warn("failed to publish session event",
			slog.String("op", op),
			slog.String("kind", string(ev.Kind)),
			sl.Err(err),
		)
	}
}

// Subscribe streams session change events until ctx is done.
func (s *Storage) Subscribe(ctx context.Context) (<-chan session.Event, error) {
	pubsub := s.Client.Subscribe(ctx, sessionChannel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to session events: %w", err)
	}

	out := make(chan session.Event)

	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var ev session.Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					continue
				}

				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
