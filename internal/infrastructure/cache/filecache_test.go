package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileCache_SetGetDel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	c, err := NewFileCache(path)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "u1", "admin"); err != nil {
		t.Fatalf("set: %v", err)
	}
	role, err := c.Get(ctx, "u1")
	if err != nil || role != "admin" {
		t.Fatalf("get: role=%q err=%v", role, err)
	}

	if err := c.Del(ctx, "u1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	role, err = c.Get(ctx, "u1")
	if err != nil || role != "" {
		t.Fatalf("expected miss after del, got role=%q err=%v", role, err)
	}
}

func TestFileCache_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	c1, err := NewFileCache(path)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	if err := c1.Set(ctx, "u1", "user"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c1.SaveToken("u1", "tok"); err != nil {
		t.Fatalf("save token: %v", err)
	}

	c2, err := NewFileCache(path)
	if err != nil {
		t.Fatalf("reopen cache: %v", err)
	}
	role, err := c2.Get(ctx, "u1")
	if err != nil || role != "user" {
		t.Fatalf("persisted role lost: role=%q err=%v", role, err)
	}
	userID, token := c2.Load()
	if userID != "u1" || token != "tok" {
		t.Fatalf("persisted token lost: %q %q", userID, token)
	}
}

func TestFileCache_RoleNeverLeaksAcrossUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	c, err := NewFileCache(path)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "u1", "admin"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Another user on the same machine must not inherit the cached role.
	role, err := c.Get(ctx, "u2")
	if err != nil || role != "" {
		t.Fatalf("cached role leaked to another user: role=%q err=%v", role, err)
	}

	// Writing the new user's role replaces the whole record.
	if err := c.Set(ctx, "u2", "user"); err != nil {
		t.Fatalf("set: %v", err)
	}
	role, _ = c.Get(ctx, "u1")
	if role != "" {
		t.Fatalf("stale role survived user switch: %q", role)
	}
}

func TestFileCache_CorruptFileDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	c, err := NewFileCache(path)
	if err != nil {
		t.Fatalf("corrupt cache must not fail open: %v", err)
	}
	if userID, token := c.Load(); userID != "" || token != "" {
		t.Fatalf("corrupt cache yielded data: %q %q", userID, token)
	}
}
