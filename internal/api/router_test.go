package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/api/middleware"
	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/service"
	"github.com/graviti/shiptracker/internal/infrastructure/chart"
	"github.com/graviti/shiptracker/internal/infrastructure/csvio"
	"github.com/graviti/shiptracker/internal/infrastructure/db/memory"
)

const sampleCSV = `MMSI,Timestamp,Timestamp_IST,Latitude,Longitude,Speed_over_ground,Course_over_ground,True_heading,Rate_of_turn,Navigation_Status,Message_Type
419000001,2024-03-01 04:30:00,2024-03-01 10:00:00,18.90,72.80,12.1,45,44,0,0,1
419000001,2024-03-01 04:35:00,2024-03-01 10:05:00,18.95,72.85,12.4,46,45,1.5,0,1
419000002,2024-03-01 04:31:00,2024-03-01 10:01:00,19.10,72.70,0,0,511,0,5,3
`

type stubReports struct{}

func (stubReports) Generate(_ context.Context, mmsi string, _ []domain.TrackRecord) (string, []byte, error) {
	return domain.ReportFileName(mmsi), []byte("%PDF-1.3"), nil
}

type testServer struct {
	t      *testing.T
	e      *echo.Echo
	cookie *http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	verifier, err := service.NewStaticVerifier("admin", "s3cret")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	sessions := memory.NewSessionStore(time.Hour)
	logger := zerolog.Nop()

	e, err := NewRouter(Dependencies{
		AuthService:    service.NewAuthService(verifier, sessions, "0123456789abcdef0123", time.Hour, logger),
		TrackService:   service.NewTrackService(sessions, csvio.NewTrackDecoder(), logger),
		ReportService:  stubReports{},
		Charts:         chart.NewRenderer(),
		SessionTTL:     time.Hour,
		UploadMaxBytes: 1 << 20,
		Logger:         logger,
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return &testServer{t: t, e: e}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) get(target string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (s *testServer) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return s.do(req)
}

func (s *testServer) upload(filename, content string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, _ := mw.CreateFormFile("file", filename)
	_, _ = io.WriteString(fw, content)
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	return s.do(req)
}

func (s *testServer) login() {
	s.t.Helper()
	rec := s.postForm("/login", url.Values{"username": {"admin"}, "password": {"s3cret"}})
	if rec.Code != http.StatusSeeOther {
		s.t.Fatalf("login: expected 303, got %d", rec.Code)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			s.cookie = ck
		}
	}
	if s.cookie == nil {
		s.t.Fatal("login: no session cookie")
	}
}

func TestRouter_GatesViews(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/", "/upload", "/route", "/speed", "/codes", "/report", "/charts/rot.png"} {
		rec := srv.get(path)
		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
			t.Fatalf("%s: expected redirect to login, got %d", path, rec.Code)
		}
	}
	if rec := srv.postForm("/select", url.Values{"mmsi": {"1"}}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("POST /select: expected 401, got %d", rec.Code)
	}

	if rec := srv.get("/login"); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Login to Ships Data Analysis") {
		t.Fatalf("login page not served: %d", rec.Code)
	}
	if rec := srv.get("/health"); rec.Code != http.StatusOK {
		t.Fatalf("health: %d", rec.Code)
	}
	if rec := srv.get("/health/ready"); rec.Code != http.StatusOK {
		t.Fatalf("readiness: %d", rec.Code)
	}
}

func TestRouter_RejectedLogin(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.postForm("/login", url.Values{"username": {"admin"}, "password": {"nope"}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid username or password. Please try again.") {
		t.Fatalf("missing failure message")
	}
}

func TestRouter_DashboardFlow(t *testing.T) {
	srv := newTestServer(t)
	srv.login()

	// Before any upload every analysis view is an advisory.
	rec := srv.get("/speed")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Please upload data and select an MMSI on the first page.") {
		t.Fatalf("expected advisory before upload, got %d", rec.Code)
	}

	if rec := srv.upload("bad.csv", "MMSI,Latitude\n1,2\n"); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad upload: expected 422, got %d", rec.Code)
	}

	if rec := srv.upload("ais.csv", sampleCSV); rec.Code != http.StatusSeeOther {
		t.Fatalf("upload: expected 303, got %d", rec.Code)
	}

	rec = srv.get("/upload")
	body := rec.Body.String()
	if !strings.Contains(body, "Ship Data for MMSI: 419000001") || !strings.Contains(body, "2 matching rows") {
		t.Fatalf("upload page does not show the first vessel:\n%s", body)
	}

	rec = srv.postForm("/select", url.Values{"mmsi": {"419000002"}, "next": {"/codes"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/codes" {
		t.Fatalf("select: got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = srv.get("/codes")
	if !strings.Contains(rec.Body.String(), "Moored") {
		t.Fatalf("codes page missing decoded status")
	}

	rec = srv.get("/route")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"tag":"End"`) {
		t.Fatalf("route page: %d", rec.Code)
	}

	rec = srv.get("/charts/speed.png")
	if rec.Code != http.StatusOK || !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("chart: %d", rec.Code)
	}
	if rec := srv.get("/charts/pie.png"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown chart: expected 404, got %d", rec.Code)
	}

	rec = srv.get("/export/codes.csv")
	if !strings.Contains(rec.Header().Get(echo.HeaderContentDisposition), "Ship_Report_MMSI_419000002.csv") {
		t.Fatalf("codes export disposition %q", rec.Header().Get(echo.HeaderContentDisposition))
	}

	rec = srv.do(httptest.NewRequest(http.MethodPost, "/report", nil))
	if rec.Code != http.StatusOK || rec.Header().Get(echo.HeaderContentType) != "application/pdf" {
		t.Fatalf("report: %d %q", rec.Code, rec.Header().Get(echo.HeaderContentType))
	}

	if rec := srv.postForm("/select", url.Values{"mmsi": {"123"}}); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown vessel: expected 404, got %d", rec.Code)
	}

	rec = srv.do(httptest.NewRequest(http.MethodPost, "/logout", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("logout: %d", rec.Code)
	}
	if rec := srv.get("/upload"); rec.Code != http.StatusSeeOther {
		t.Fatalf("session should be gone after logout, got %d", rec.Code)
	}
}
