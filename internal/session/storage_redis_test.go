package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	data    map[string]string
	lastTTL time.Duration
	err     error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = value.(string)
	f.lastTTL = exp
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	fake := newFakeRedis()
	rs := NewRedisStorage(fake, "ndis:session:", 30*time.Minute)
	ctx := context.Background()

	if _, err := rs.Load(ctx, "ctx1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load missing = %v", err)
	}
	if err := rs.Save(ctx, "ctx1", "abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if fake.data["ndis:session:ctx1"] != "abc" {
		t.Fatalf("stored under wrong key: %v", fake.data)
	}
	if fake.lastTTL != 30*time.Minute {
		t.Errorf("ttl = %v", fake.lastTTL)
	}
	if got, err := rs.Load(ctx, "ctx1"); err != nil || got != "abc" {
		t.Fatalf("Load = %q, %v", got, err)
	}
	if err := rs.Delete(ctx, "ctx1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(fake.data) != 0 {
		t.Fatalf("data left behind: %v", fake.data)
	}
}

func TestRedisStorage_WrapsErrors(t *testing.T) {
	boom := errors.New("connection refused")
	rs := NewRedisStorage(&fakeRedis{data: map[string]string{}, err: boom}, "p:", 0)

	if _, err := rs.Load(context.Background(), "k"); !errors.Is(err, boom) {
		t.Errorf("Load err = %v", err)
	}
	if err := rs.Save(context.Background(), "k", "v"); !errors.Is(err, boom) {
		t.Errorf("Save err = %v", err)
	}
}
