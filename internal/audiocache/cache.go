// Package audiocache holds synthesized replies for a short time so clients
// can fetch them by id.
package audiocache

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultTTL is how long an entry stays retrievable after Put.
const DefaultTTL = 300 * time.Second

var ErrNotFound = errors.New("audio not found or expired")

type Cache interface {
	Put(ctx context.Context, id string, data []byte) error
	Get(ctx context.Context, id string) ([]byte, error)
	PurgeExpired(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

// NewID returns a fresh, URL-safe audio id.
func NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// URL is the path clients use to download an entry.
func URL(id string) string {
	return "/audio/" + id
}
