package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/muhammadheryan/compose-demos/cmd/redis"
	"github.com/muhammadheryan/compose-demos/model"
	"github.com/muhammadheryan/compose-demos/repository/session"
)

const sessionPrefix = "flow:"

type redis struct {
	client *goredis.Client
}

// NewRepository returns a session.Repository on the shared Redis client.
func NewRepository() session.Repository {
	return &redis{client: redisclient.Get()}
}

// NewRepositoryWithClient is NewRepository with an explicit client.
func NewRepositoryWithClient(client *goredis.Client) session.Repository {
	return &redis{client: client}
}

// Get loads a flow state stored as JSON
func (r *redis) Get(ctx context.Context, sessionID string) (*model.FlowState, error) {
	if r.client == nil {
		return nil, session.ErrNotFound
	}
	val, err := r.client.Get(ctx, sessionPrefix+sessionID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var state model.FlowState
	if err := json.Unmarshal(val, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &state, nil
}

// Save stores the flow state with a time-to-live, 0 meaning no expiry
func (r *redis) Save(ctx context.Context, sessionID string, state *model.FlowState, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	body, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sessionID, err)
	}
	return r.client.Set(ctx, sessionPrefix+sessionID, body, ttl).Err()
}

// Delete removes a session
func (r *redis) Delete(ctx context.Context, sessionID string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, sessionPrefix+sessionID).Err()
}
