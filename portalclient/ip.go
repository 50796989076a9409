package portalclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

const ipLookupURL = "https://api.ipify.org?format=json"

// PublicIP resolves the caller's public IP address for the optional
// ipAddress field of the portal logins. Failure is not fatal; callers send
// an empty address instead.
func (c *Client) PublicIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ipLookupURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "create ip lookup request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "ip lookup failed")
	}
	defer resp.Body.Close()

	var result struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "decode ip lookup response")
	}
	return result.IP, nil
}
