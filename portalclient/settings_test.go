package portalclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestCache(t *testing.T) *CacheStore {
	t.Helper()
	cache, err := NewCacheStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewCacheStore: %v", err)
	}
	return cache
}

func settingsServer(t *testing.T, settings SiteSettings) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/settings/site" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    settings,
		})
	}))
}

func TestSiteSettingsRemoteSuccessRefreshesCache(t *testing.T) {
	remote := SiteSettings{SiteName: "Portal A", AdminEmail: "a@example.com"}
	srv := settingsServer(t, remote)
	defer srv.Close()

	cache := newTestCache(t)
	client := New(srv.URL, cache)

	got, err := client.SiteSettings(context.Background())
	if err != nil {
		t.Fatalf("SiteSettings: %v", err)
	}
	if got != remote {
		t.Errorf("settings = %+v, want %+v", got, remote)
	}

	var cached SiteSettings
	if err := cache.Get(cacheKeySiteSettings, &cached); err != nil {
		t.Fatalf("cache not written: %v", err)
	}
	if cached != remote {
		t.Errorf("cached = %+v, want %+v", cached, remote)
	}
}

func TestSiteSettingsFallsBackToCache(t *testing.T) {
	cache := newTestCache(t)
	stored := SiteSettings{SiteName: "Cached Portal", AdminEmail: "cache@example.com"}
	if err := cache.Put(cacheKeySiteSettings, stored); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	// Point at a closed server so the remote tier fails.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := New(srv.URL, cache)

	got, err := client.SiteSettings(context.Background())
	if err == nil {
		t.Fatal("expected advisory error when remote is down")
	}
	if got != stored {
		t.Errorf("settings = %+v, want cached %+v", got, stored)
	}
}

func TestSiteSettingsFallsBackToDefaults(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	// Absent cache.
	client := New(srv.URL, newTestCache(t))
	got, err := client.SiteSettings(context.Background())
	if err == nil {
		t.Fatal("expected advisory error when remote is down")
	}
	if got != DefaultSiteSettings() {
		t.Errorf("settings = %+v, want built-in defaults", got)
	}

	// Corrupt cache.
	cache := newTestCache(t)
	if err := os.WriteFile(filepath.Join(cache.dir, cacheKeySiteSettings+".json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt cache: %v", err)
	}
	client = New(srv.URL, cache)
	got, err = client.SiteSettings(context.Background())
	if err == nil {
		t.Fatal("expected advisory error when remote is down")
	}
	if got != DefaultSiteSettings() {
		t.Errorf("settings = %+v, want built-in defaults for corrupt cache", got)
	}
}

func TestUpdateSiteSettingsKeepsLocalValueOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cache := newTestCache(t)
	client := New(srv.URL, cache)

	previous := SiteSettings{SiteName: "Old"}
	if err := cache.Put(cacheKeySiteSettings, previous); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	submitted := SiteSettings{SiteName: "New Portal", AdminEmail: "new@example.com"}
	got, err := client.UpdateSiteSettings(context.Background(), nil, submitted)
	if err == nil {
		t.Fatal("expected error when the write does not reach the server")
	}
	if got != submitted {
		t.Errorf("settings = %+v, want submitted value %+v", got, submitted)
	}

	var cached SiteSettings
	if err := cache.Get(cacheKeySiteSettings, &cached); err != nil {
		t.Fatalf("cache read: %v", err)
	}
	if cached != submitted {
		t.Errorf("cached = %+v, want submitted value", cached)
	}
}

func TestUpdateSiteSettingsAdoptsServerCanonicalValue(t *testing.T) {
	canonical := SiteSettings{SiteName: "Canonical", AdminEmail: "canon@example.com"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    canonical,
		})
	}))
	defer srv.Close()

	client := New(srv.URL, newTestCache(t))
	got, err := client.UpdateSiteSettings(context.Background(), nil, SiteSettings{SiteName: "submitted"})
	if err != nil {
		t.Fatalf("UpdateSiteSettings: %v", err)
	}
	if got != canonical {
		t.Errorf("settings = %+v, want server canonical %+v", got, canonical)
	}
}

func TestBannerSettingsFallbackTiers(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cache := newTestCache(t)
	stored := BannerSettings{
		Banners:         []Banner{{Type: "image", ImageURL: "/uploads/x.png", IsActive: true}},
		AutoSlide:       false,
		SlideIntervalMS: 5000,
	}
	if err := cache.Put(cacheKeyBannerSettings, stored); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	client := New(srv.URL, cache)
	got, err := client.BannerSettings(context.Background())
	if err == nil {
		t.Fatal("expected advisory error when remote is down")
	}
	if len(got.Banners) != 1 || got.Banners[0].ImageURL != "/uploads/x.png" || got.SlideIntervalMS != 5000 {
		t.Errorf("banner settings = %+v, want cached value", got)
	}

	// No cache at all degrades to the built-in default banner.
	client = New(srv.URL, nil)
	got, err = client.BannerSettings(context.Background())
	if err == nil {
		t.Fatal("expected advisory error when remote is down")
	}
	want := DefaultBannerSettings()
	if len(got.Banners) != len(want.Banners) || got.Banners[0].Title != want.Banners[0].Title {
		t.Errorf("banner settings = %+v, want defaults", got)
	}
}
