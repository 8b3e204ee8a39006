package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/uploads-ms-go/internal/db"
)

type fakeVerifier struct {
	id    db.UUID
	err   error
	calls int
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (db.UUID, error) {
	f.calls++
	return f.id, f.err
}

type fakeCache struct {
	entries map[string]db.UUID
	getErr  error
}

func (f *fakeCache) GetUserID(ctx context.Context, token string) (db.UUID, bool, error) {
	if f.getErr != nil {
		return db.UUID{}, false, f.getErr
	}
	id, ok := f.entries[token]
	return id, ok, nil
}
func (f *fakeCache) SetUserID(ctx context.Context, token string, id db.UUID) {
	f.entries[token] = id
}

func TestCachedVerifier_MissThenHit(t *testing.T) {
	inner := &fakeVerifier{id: db.NewUUID()}
	c := &fakeCache{entries: map[string]db.UUID{}}
	v := NewCachedVerifier(inner, c)

	for i := 0; i < 3; i++ {
		got, err := v.Verify(context.Background(), "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != inner.id {
			t.Errorf("got %s; want %s", got, inner.id)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner verifier called %d times; want 1", inner.calls)
	}
}

func TestCachedVerifier_RejectionNotCached(t *testing.T) {
	inner := &fakeVerifier{err: ErrInvalidToken}
	c := &fakeCache{entries: map[string]db.UUID{}}
	v := NewCachedVerifier(inner, c)

	if _, err := v.Verify(context.Background(), "bad"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if len(c.entries) != 0 {
		t.Error("rejected tokens must never be cached")
	}
}

func TestCachedVerifier_CacheErrorFallsThrough(t *testing.T) {
	inner := &fakeVerifier{id: db.NewUUID()}
	c := &fakeCache{entries: map[string]db.UUID{}, getErr: errors.New("redis down")}
	v := NewCachedVerifier(inner, c)

	got, err := v.Verify(context.Background(), "tok")
	if err != nil {
		t.Fatalf("a cache failure must degrade to plain verification, got %v", err)
	}
	if got != inner.id {
		t.Errorf("got %s; want %s", got, inner.id)
	}
}
