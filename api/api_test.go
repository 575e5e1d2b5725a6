package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/danielsolis/portfolio-site-backend/database"
	"github.com/danielsolis/portfolio-site-backend/services"
)

// fakeNotifier records contact messages instead of dialing the mail relay.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []services.ContactMessage
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, msg services.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeNotifier) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct horse battery"
)

func newTestRouter(t *testing.T, notifier services.Notifier) (*chi.Mux, database.Database) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "portfolio.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	cfg := map[string]string{
		"APP_KEY":        "test-signing-secret",
		"ADMIN_EMAIL":    testAdminEmail,
		"ADMIN_PASSWORD": testAdminPassword,
	}
	if err := database.Bootstrap(db, cfg); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	router, err := newRouter(db, notifier, withConfig(cfg))
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return router, db
}

func doGet(router http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doPostForm(router http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// loginAsAdmin performs a real login round trip and returns the session cookies.
func loginAsAdmin(t *testing.T, router http.Handler) []*http.Cookie {
	t.Helper()
	rec := doPostForm(router, "/admin", url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	}, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no session cookie")
	}
	return cookies
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func projectForm(title string) url.Values {
	return url.Values{
		"title":       {title},
		"description": {"a description"},
		"img_url":     {"https://example.com/img.png"},
		"body":        {"<p>body</p>"},
	}
}
