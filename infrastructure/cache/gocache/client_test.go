package gocache

import (
	"context"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient(5*time.Minute, 10*time.Minute)

	if client == nil {
		t.Error("NewClient returned nil")
	}
}

func TestClient_SetAndGet(t *testing.T) {
	client := NewClient(5*time.Minute, 10*time.Minute)
	ctx := context.Background()

	key := "test-key"
	value := []byte("test-value")

	if err := client.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := client.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}
}

func TestClient_Get_Miss(t *testing.T) {
	client := NewClient(5*time.Minute, 10*time.Minute)

	got, err := client.Get(context.Background(), "missing")

	if err != ErrCacheMiss {
		t.Errorf("Get returned %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil value on miss")
	}
}

func TestClient_Get_Expired(t *testing.T) {
	client := NewClient(5*time.Minute, 10*time.Minute)
	ctx := context.Background()

	if err := client.Set(ctx, "short", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := client.Get(ctx, "short"); err != ErrCacheMiss {
		t.Errorf("Get after expiry returned %v, want ErrCacheMiss", err)
	}
}

func TestClient_Set_ZeroTTLNeverExpires(t *testing.T) {
	// Short default expiration so a zero TTL entry would expire if the
	// default leaked through
	client := NewClient(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	if err := client.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := client.Get(ctx, "forever"); err != nil {
		t.Errorf("Get returned %v, want value to survive", err)
	}
}

func TestClient_Delete(t *testing.T) {
	client := NewClient(5*time.Minute, 10*time.Minute)
	ctx := context.Background()

	if err := client.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if err := client.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}

	if _, err := client.Get(ctx, "k"); err != ErrCacheMiss {
		t.Errorf("Get after delete returned %v, want ErrCacheMiss", err)
	}
}

func TestClient_Delete_NonExistentKey(t *testing.T) {
	client := NewClient(5*time.Minute, 10*time.Minute)

	if err := client.Delete(context.Background(), "missing"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestClient_CancelledContext(t *testing.T) {
	client := NewClient(5*time.Minute, 10*time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Get(ctx, "k"); err == nil {
		t.Error("Get with cancelled context should return error")
	}
	if err := client.Set(ctx, "k", []byte("v"), 0); err == nil {
		t.Error("Set with cancelled context should return error")
	}
}

func TestClient_GetReturnsCopy(t *testing.T) {
	client := NewClient(5*time.Minute, 10*time.Minute)
	ctx := context.Background()

	if err := client.Set(ctx, "k", []byte("abc"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	first, err := client.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	first[0] = 'x'

	second, err := client.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(second) != "abc" {
		t.Errorf("cached value mutated through returned slice: %s", string(second))
	}
}
