package repository

import "context"

// SessionState stores opaque per-session values such as preferences and drafts
type SessionState interface {
	// GetValue returns nil, nil when the key was never written
	GetValue(ctx context.Context, sessionID, key string) ([]byte, error)
	PutValue(ctx context.Context, sessionID, key string, value []byte) error
	DeleteValue(ctx context.Context, sessionID, key string) error
}
