package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// State keys used by the per-user blobs.
const (
	KeyCart              = "cart"
	KeyActiveDeal        = "active_deal"
	KeyFavoriteLocations = "favorite_locations"
	KeyFavoriteMeals     = "favorite_meals"
	KeyPreferences       = "preferences"
)

// Blob is a single persisted value.
type Blob interface {
	// Load returns nil and no error when nothing is stored.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}

// UserBlob addresses one key of a user's state in a StateStore.
type UserBlob struct {
	Store  StateStore
	UserID string
	Key    string
}

func (b UserBlob) Load(ctx context.Context) ([]byte, error) {
	return b.Store.GetState(ctx, b.UserID, b.Key)
}

func (b UserBlob) Save(ctx context.Context, data []byte) error {
	return b.Store.PutState(ctx, b.UserID, b.Key, data)
}

func (b UserBlob) Delete(ctx context.Context) error {
	return b.Store.DeleteState(ctx, b.UserID, b.Key)
}

// MemoryBlob is an in-process Blob.
type MemoryBlob struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryBlob returns a blob holding data (nil for empty).
func NewMemoryBlob(data []byte) *MemoryBlob {
	return &MemoryBlob{data: data}
}

func (b *MemoryBlob) Load(context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *MemoryBlob) Save(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBlob) Delete(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
	return nil
}

// LoadJSON decodes the blob into v. It reports false when the blob is empty
// or holds malformed JSON; malformed values are logged and discarded.
// Only backend failures are returned as errors.
func LoadJSON(ctx context.Context, b Blob, v any) (bool, error) {
	data, err := b.Load(ctx)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("Discarding corrupted state", "error", err, "bytes", len(data))
		if delErr := b.Delete(ctx); delErr != nil {
			slog.Warn("Failed to delete corrupted state", "error", delErr)
		}
		return false, nil
	}
	return true, nil
}

// SaveJSON encodes v into the blob.
func SaveJSON(ctx context.Context, b Blob, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Save(ctx, data)
}
