package portalclient

import (
	"context"
	"net/http"
)

// Settings resolution never fails outright: every tier degrades to the next
// one. The returned error is advisory only: when it is non-nil the caller
// still gets a usable settings value, it just did not come from (or reach)
// the portal.

// SiteSettings resolves the site settings: portal first, then the local
// cache, then the built-in defaults. A successful fetch refreshes the cache.
func (c *Client) SiteSettings(ctx context.Context) (SiteSettings, error) {
	var settings SiteSettings
	err := c.do(ctx, http.MethodGet, "/api/settings/site", nil, nil, &settings)
	if err == nil {
		if c.cache != nil {
			_ = c.cache.Put(cacheKeySiteSettings, settings)
		}
		return settings, nil
	}

	if c.cache != nil {
		var cached SiteSettings
		if cacheErr := c.cache.Get(cacheKeySiteSettings, &cached); cacheErr == nil {
			return cached, err
		}
	}
	return DefaultSiteSettings(), err
}

// UpdateSiteSettings writes the settings to the portal, adopting the server's
// canonical value on success. When the portal is unreachable the submitted
// value is kept and cached so the operator's change is not lost; the advisory
// error reports that the write did not reach the server.
func (c *Client) UpdateSiteSettings(ctx context.Context, session *Session, settings SiteSettings) (SiteSettings, error) {
	var canonical SiteSettings
	err := c.do(ctx, http.MethodPut, "/api/settings/site", session, settings, &canonical)
	if err == nil {
		if c.cache != nil {
			_ = c.cache.Put(cacheKeySiteSettings, canonical)
		}
		return canonical, nil
	}

	if c.cache != nil {
		_ = c.cache.Put(cacheKeySiteSettings, settings)
	}
	return settings, err
}

// BannerSettings resolves the banner configuration through the same three
// tiers as SiteSettings.
func (c *Client) BannerSettings(ctx context.Context) (BannerSettings, error) {
	var settings BannerSettings
	err := c.do(ctx, http.MethodGet, "/api/settings/banner", nil, nil, &settings)
	if err == nil {
		if c.cache != nil {
			_ = c.cache.Put(cacheKeyBannerSettings, settings)
		}
		return settings, nil
	}

	if c.cache != nil {
		var cached BannerSettings
		if cacheErr := c.cache.Get(cacheKeyBannerSettings, &cached); cacheErr == nil {
			return cached, err
		}
	}
	return DefaultBannerSettings(), err
}

// UpdateBannerSettings writes the banner configuration with the same
// keep-local-on-failure behavior as UpdateSiteSettings.
func (c *Client) UpdateBannerSettings(ctx context.Context, session *Session, settings BannerSettings) (BannerSettings, error) {
	var canonical BannerSettings
	err := c.do(ctx, http.MethodPut, "/api/settings/banner", session, settings, &canonical)
	if err == nil {
		if c.cache != nil {
			_ = c.cache.Put(cacheKeyBannerSettings, canonical)
		}
		return canonical, nil
	}

	if c.cache != nil {
		_ = c.cache.Put(cacheKeyBannerSettings, settings)
	}
	return settings, err
}
