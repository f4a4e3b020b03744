package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisDenylist(t *testing.T) (*RedisDenylist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDenylist(client, 24*time.Hour), mr
}

func TestRedisDenylistRevokeAndLookup(t *testing.T) {
	denylist, _ := newTestRedisDenylist(t)
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "tok-1")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if revoked {
		t.Fatal("fresh token reported revoked")
	}

	if err := denylist.Revoke(ctx, "tok-1", time.Now()); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	revoked, err = denylist.IsRevoked(ctx, "tok-1")
	if err != nil {
		t.Fatalf("IsRevoked after revoke: %v", err)
	}
	if !revoked {
		t.Fatal("revoked token not reported")
	}

	// Idempotent: a second revoke succeeds.
	if err := denylist.Revoke(ctx, "tok-1", time.Now()); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
}

func TestRedisDenylistEntriesExpire(t *testing.T) {
	denylist, mr := newTestRedisDenylist(t)
	ctx := context.Background()

	if err := denylist.Revoke(ctx, "tok-1", time.Now()); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	mr.FastForward(24*time.Hour + time.Minute)

	revoked, err := denylist.IsRevoked(ctx, "tok-1")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if revoked {
		t.Fatal("entry should have expired with the retention window")
	}
}
