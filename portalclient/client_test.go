package portalclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnonymousRequestOmitsAuthorizationHeader(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	if err := client.MemberLogin(context.Background(), "john_doe", "secret", "", ""); err != nil {
		t.Fatalf("MemberLogin: %v", err)
	}
	if hadHeader {
		t.Errorf("anonymous request carried Authorization header %q", gotAuth)
	}
}

func TestSessionTokenIsSentAsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    SiteSettings{SiteName: "x"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	session := &Session{token: "tok123"}
	if _, err := client.UpdateSiteSettings(context.Background(), session, SiteSettings{}); err != nil {
		t.Fatalf("UpdateSiteSettings: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
}

func TestDomainErrorsSurfaceAsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "voucher already used",
		})
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.VoucherLogin(context.Background(), "1JK9P", "", "")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error = %T (%v), want *APIError", err, err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "voucher already used" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestAdminLoginStoresTokenAndLogoutClearsIt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"token": "tok456",
				"user":  AdminUser{ID: "1", Username: "admin", Role: "admin"},
			},
		})
	}))
	defer srv.Close()

	cache := newTestCache(t)
	client := New(srv.URL, cache)

	session, err := client.AdminLogin(context.Background(), "admin", "password")
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	if !session.Authenticated() || session.Token() != "tok456" {
		t.Errorf("session = %+v, want authenticated with tok456", session)
	}
	if session.User().Username != "admin" {
		t.Errorf("session user = %+v", session.User())
	}

	resumed := client.ResumeSession()
	if resumed == nil || resumed.Token() != "tok456" {
		t.Errorf("resumed session = %+v, want token tok456", resumed)
	}

	client.Logout(session)
	if session.Authenticated() {
		t.Errorf("session still authenticated after logout")
	}
	if client.ResumeSession() != nil {
		t.Errorf("cached token survived logout")
	}
}
