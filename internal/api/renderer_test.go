package api

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/graviti/shiptracker/internal/api/handler"
	"github.com/graviti/shiptracker/internal/core/analysis"
)

func TestTemplates_RenderEveryPage(t *testing.T) {
	tmpl, err := NewTemplates(false)
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	nav := handler.Page{Title: "Ship Codes", Active: handler.TemplateCodes, Nav: handler.Navigation, User: "alice", Vessels: []string{"111", "222"}, Selected: "222"}
	for _, name := range pages {
		var buf bytes.Buffer
		if err := tmpl.Render(&buf, name, nav, nil); err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		if !strings.Contains(buf.String(), "<title>Ship Codes | Ship Tracker</title>") {
			t.Fatalf("%s: layout not applied", name)
		}
	}
}

func TestTemplates_VesselSelector(t *testing.T) {
	tmpl, err := NewTemplates(false)
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	var buf bytes.Buffer
	page := handler.Page{Title: "Ship Data Analysis", Active: handler.TemplateSpeed, Nav: handler.Navigation, User: "alice", Vessels: []string{"111", "222"}, Selected: "222"}
	if err := tmpl.Render(&buf, handler.TemplateSpeed, page, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<option value="222" selected>222</option>`,
		`<input type="hidden" name="next" value="/speed">`,
		`<a href="/speed" class="active">Speed Analysis</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output", want)
		}
	}
}

func TestTemplates_RouteEmbedsJSON(t *testing.T) {
	tmpl, err := NewTemplates(false)
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	route := analysis.Route{
		Path:    []analysis.LatLng{{Lat: 18.9, Lng: 72.8}},
		Markers: []analysis.RouteMarker{{Position: analysis.LatLng{Lat: 18.9, Lng: 72.8}, MMSI: "</script>", Tag: analysis.TagEnd, Color: analysis.ColorEnd}},
	}
	center, _ := route.Center()
	page := handler.Page{
		Title:  "Ship Route Map",
		Active: handler.TemplateRoute,
		Nav:    handler.Navigation,
		Body: struct {
			Route    analysis.Route
			Center   analysis.LatLng
			Points   int
			ChartURL string
		}{route, center, 1, "/charts/rot.png"},
	}

	var buf bytes.Buffer
	if err := tmpl.Render(&buf, handler.TemplateRoute, page, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"lat":18.9`) {
		t.Fatalf("route data not embedded as JSON")
	}
	if strings.Count(out, "</script>") != strings.Count(out, "<script") {
		t.Fatalf("marker data escaped out of the script element")
	}
	if !strings.Contains(out, "leaflet.js") {
		t.Fatalf("map library not included")
	}
}

func TestTemplates_LoginLogo(t *testing.T) {
	for _, showLogo := range []bool{false, true} {
		tmpl, err := NewTemplates(showLogo)
		if err != nil {
			t.Fatalf("parse templates: %v", err)
		}
		var buf bytes.Buffer
		page := handler.Page{Title: "Login to Ships Data Analysis", Active: handler.TemplateLogin}
		if err := tmpl.Render(&buf, handler.TemplateLogin, page, nil); err != nil {
			t.Fatalf("render: %v", err)
		}
		if got := strings.Contains(buf.String(), "/branding/logo"); got != showLogo {
			t.Fatalf("showLogo=%v but logo present=%v", showLogo, got)
		}
		if strings.Contains(buf.String(), "<aside>") {
			t.Fatalf("login page must not show the sidebar")
		}
	}
}

func TestTemplates_UnknownTemplate(t *testing.T) {
	tmpl, err := NewTemplates(false)
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	c := echo.New().NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	if err := tmpl.Render(&bytes.Buffer{}, "missing", nil, c); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
