package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/graviti/shiptracker/internal/core/analysis"
	"github.com/graviti/shiptracker/internal/core/domain"
)

// AdvisoryNoData is shown by every view that needs a selected vessel.
const AdvisoryNoData = "Please upload data and select an MMSI on the first page."

// Template names understood by the renderer.
const (
	TemplateLogin    = "login"
	TemplateUpload   = "upload"
	TemplateRoute    = "route"
	TemplateSpeed    = "speed"
	TemplateCodes    = "codes"
	TemplateReport   = "report"
	TemplateAdvisory = "advisory"
	TemplateError    = "error"
)

// NavItem is one entry of the navigation menu.
type NavItem struct {
	Key   string
	Label string
	Path  string
}

// Navigation lists the five views in menu order.
var Navigation = []NavItem{
	{Key: TemplateUpload, Label: "Ship Data & Select MMSI", Path: "/upload"},
	{Key: TemplateRoute, Label: "Ship Route", Path: "/route"},
	{Key: TemplateSpeed, Label: "Speed Analysis", Path: "/speed"},
	{Key: TemplateCodes, Label: "Ship Codes", Path: "/codes"},
	{Key: TemplateReport, Label: "Download Report", Path: "/report"},
}

// Page is the data every template receives. Body carries the view-specific
// part.
type Page struct {
	Title    string
	Active   string
	Nav      []NavItem
	User     string
	Vessels  []string
	Selected string
	Source   string
	Records  int
	Message  string
	Status   int
	Body     any
}

func newPage(sess *domain.Session, active, title string) Page {
	p := Page{Title: title, Active: active}
	if sess == nil {
		return p
	}
	p.Nav = Navigation
	p.User = sess.Username
	p.Selected = sess.SelectedMMSI
	p.Source = sess.SourceName
	p.Records = len(sess.Tracks)
	if sess.HasData() {
		p.Vessels = analysis.Vessels(sess.Tracks)
	}
	return p
}

// AdvisoryPage is the non-fatal notice shown when a view has nothing to
// display.
func AdvisoryPage(c echo.Context, active, message string) Page {
	sess, _ := c.Get("session").(*domain.Session)
	p := newPage(sess, active, "Nothing to show yet")
	p.Message = message
	return p
}

// ErrorPage describes a failed request.
func ErrorPage(c echo.Context, status int, message string) Page {
	sess, _ := c.Get("session").(*domain.Session)
	p := newPage(sess, "", "Something went wrong")
	p.Status = status
	p.Message = message
	return p
}

// ActiveView maps a request path to its navigation key.
func ActiveView(path string) string {
	for _, item := range Navigation {
		if item.Path == path {
			return item.Key
		}
	}
	return ""
}
