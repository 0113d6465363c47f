package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func flashContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestFlashRoundTrip(t *testing.T) {
	// First request queues the notification.
	c, rec := flashContext(httptest.NewRequest(http.MethodPost, "/admin/cars", nil))
	setFlash(c, "success", "Asset registered successfully")

	var queued *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == flashCookie {
			queued = ck
		}
	}
	if queued == nil {
		t.Fatalf("flash cookie not set")
	}

	// The next request pops it exactly once.
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(queued)
	c, rec = flashContext(req)

	flash := popFlash(c)
	if flash == nil {
		t.Fatalf("expected a pending flash")
	}
	if flash.Kind != "success" || flash.Message != "Asset registered successfully" {
		t.Fatalf("unexpected flash: %+v", flash)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == flashCookie && ck.MaxAge >= 0 {
			t.Fatalf("flash cookie should be expired after popping")
		}
	}
}

func TestFlashSurvivesArbitraryBackendMessages(t *testing.T) {
	c, rec := flashContext(httptest.NewRequest(http.MethodPost, "/login", nil))
	setFlash(c, "error", `VIN "JT1; drop" already registered, try again`)

	var queued *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == flashCookie {
			queued = ck
		}
	}
	if queued == nil {
		t.Fatalf("flash cookie not set")
	}

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(queued)
	c, _ = flashContext(req)

	flash := popFlash(c)
	if flash == nil || flash.Message != `VIN "JT1; drop" already registered, try again` {
		t.Fatalf("message mangled: %+v", flash)
	}
}

func TestPopFlash_IgnoresGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "%%%not-base64%%%"})
	c, _ := flashContext(req)

	if flash := popFlash(c); flash != nil {
		t.Fatalf("garbage cookie should yield no flash, got %+v", flash)
	}

	// No cookie at all.
	c, _ = flashContext(httptest.NewRequest(http.MethodGet, "/", nil))
	if flash := popFlash(c); flash != nil {
		t.Fatalf("expected nil flash without cookie, got %+v", flash)
	}
}
