package portalclient

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Cache keys. Each key holds the last known-good JSON snapshot.
const (
	cacheKeyToken          = "admin_token"
	cacheKeySiteSettings   = "siteSettings"
	cacheKeyBannerSettings = "bannerSettings"
)

// CacheStore persists JSON snapshots to a directory, one file per key. It is
// the last-known-good shadow consulted when the portal is unreachable.
type CacheStore struct {
	dir string
}

// NewCacheStore creates the cache directory if needed.
func NewCacheStore(dir string) (*CacheStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create cache directory")
	}
	return &CacheStore{dir: dir}, nil
}

func (s *CacheStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get decodes the snapshot stored under key into v.
func (s *CacheStore) Get(key string, v interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return errors.Wrapf(err, "read cache %q", key)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode cache %q", key)
	}
	return nil
}

// Put overwrites the snapshot stored under key.
func (s *CacheStore) Put(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode cache %q", key)
	}
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		return errors.Wrapf(err, "write cache %q", key)
	}
	return nil
}

// Delete removes the snapshot stored under key, if any.
func (s *CacheStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "delete cache %q", key)
	}
	return nil
}
