// Package cache provides a file-backed role cache for single-user clients.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type cacheFile struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Token  string `json:"token,omitempty"`
}

// FileCache persists the last-known role of a single user in a JSON file.
// The role is stored next to the user id it belongs to, and Get refuses to
// return a role written for a different user: on a shared machine a cached
// role must never carry over to whoever signs in next.
type FileCache struct {
	path string

	mu   sync.Mutex
	data cacheFile
}

func NewFileCache(path string) (*FileCache, error) {
	c := &FileCache{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	if err := json.Unmarshal(raw, &c.data); err != nil {
		// A corrupt cache is discarded, not fatal.
		c.data = cacheFile{}
	}
	return c, nil
}

// Load returns the persisted user id and token for session bootstrap.
func (c *FileCache) Load() (userID, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data.UserID, c.data.Token
}

// SaveToken persists the bearer token alongside the cached role.
func (c *FileCache) SaveToken(userID, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data.UserID != userID {
		c.data = cacheFile{UserID: userID}
	}
	c.data.Token = token
	return c.flush()
}

func (c *FileCache) Get(ctx context.Context, userID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data.UserID != userID {
		return "", nil
	}
	return c.data.Role, nil
}

func (c *FileCache) Set(ctx context.Context, userID, role string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data.UserID != userID {
		c.data = cacheFile{UserID: userID}
	}
	c.data.Role = role
	return c.flush()
}

func (c *FileCache) Del(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data.UserID != userID {
		return nil
	}
	c.data = cacheFile{}
	return c.flush()
}

func (c *FileCache) flush() error {
	raw, err := json.Marshal(c.data)
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(c.path, raw, 0o600); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}
