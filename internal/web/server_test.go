package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashishmaurya/portfolio/internal/config"
	"github.com/ashishmaurya/portfolio/internal/contact"
	"github.com/ashishmaurya/portfolio/internal/portfolio"
)

type fakeSender struct {
	got []contact.Submission
	err error
}

func (f *fakeSender) Submit(_ context.Context, s contact.Submission) (contact.Receipt, error) {
	f.got = append(f.got, s)
	if f.err != nil {
		return contact.Receipt{}, f.err
	}
	return contact.Receipt{ID: "receipt-1", SentAt: time.Now()}, nil
}

func newTestServer(t *testing.T, sender ContactSender) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := portfolio.LoadCatalog("")
	require.NoError(t, err)

	cfg := &config.Config{
		Port:          "0",
		RevealStagger: 100 * time.Millisecond,
		TrackVisitors: true,
	}
	if sender == nil {
		sender = &fakeSender{}
	}
	s, err := NewServer(cfg, catalog, sender, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, s, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestPages_Render(t *testing.T) {
	s := newTestServer(t, nil)

	tests := map[string]string{
		"/":          "Featured Projects",
		"/about":     "Centre For Development Of Advanced Computing",
		"/portfolio": "Search projects...",
		"/contact":   "ashishmaurya290@gmail.com",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			w := get(t, s, path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), want)
		})
	}
}

func TestPortfolio_FilterControls(t *testing.T) {
	s := newTestServer(t, nil)

	body := get(t, s, "/portfolio").Body.String()

	for _, option := range append([]string{"All", "Professional", "Personal"}, s.catalog.Technologies()...) {
		assert.Contains(t, body, `value="`+option+`"`)
	}
	assert.Equal(t, 6, strings.Count(body, `class="project-item`))
	assert.Contains(t, body, `name="shown" value="1,2,3,4,5,6"`)
	assert.Contains(t, body, `data-delay="500"`)
}

func TestPortfolio_CategoryQuery(t *testing.T) {
	s := newTestServer(t, nil)

	body := get(t, s, "/portfolio?category=Personal").Body.String()

	assert.Equal(t, 2, strings.Count(body, `class="project-item`))
	assert.Contains(t, body, "Mystic Brews")
	assert.NotContains(t, body, "DKSCORE")
}

func TestResults_EmptyState(t *testing.T) {
	s := newTestServer(t, nil)

	w := get(t, s, "/portfolio/results?q=nonexistentxyz")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "No projects found")
	assert.Contains(t, body, "Try adjusting your search or filters")
	assert.NotContains(t, body, "project-grid")
	assert.Contains(t, body, `hx-swap-oob="true"`)
}

func TestResults_Fragment(t *testing.T) {
	s := newTestServer(t, nil)

	w := get(t, s, "/portfolio/results?technology=SEO&shown=1,2,3,4,5,6")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "<html")
	assert.Equal(t, 3, strings.Count(body, `class="project-item`))
	assert.Contains(t, body, `value="1,2,4"`)
	assert.Contains(t, body, `data-id="4" data-delay="200"`)
}

func TestResults_UnchangedSequenceSkipsRender(t *testing.T) {
	s := newTestServer(t, nil)

	// "typescript" matches exactly the Personal projects.
	w := get(t, s, "/portfolio/results?q=typescript&shown=5,6")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.revealSkipped))
}

func TestResults_BadShownRenders(t *testing.T) {
	s := newTestServer(t, nil)

	w := get(t, s, "/portfolio/results?category=Personal&shown=garbage")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mystic Brews")
}

func TestProjectDetail(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/portfolio/projects/2", nil)
	req.Header.Set("HX-Request", "true")
	w := do(t, s, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, "DKSCORE")
	assert.Contains(t, body, "UI/UX")
	assert.Contains(t, body, "Visit Website")
	assert.Contains(t, body, "https://www.dkscore.com/")

	full := get(t, s, "/portfolio/projects/2").Body.String()
	assert.Contains(t, full, "<html")
}

func TestProjectDetail_NotFound(t *testing.T) {
	s := newTestServer(t, nil)

	assert.Equal(t, http.StatusNotFound, get(t, s, "/portfolio/projects/99").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/portfolio/projects/abc").Code)
}

func TestProjectDetail_NotFoundPartial(t *testing.T) {
	s := newTestServer(t, nil)

	for _, target := range []string{"/portfolio/projects/99", "/portfolio/projects/abc"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("HX-Request", "true")
		w := do(t, s, req)

		assert.Equal(t, http.StatusNotFound, w.Code, target)
		body := w.Body.String()
		assert.NotContains(t, body, "<html", target)
		assert.Contains(t, body, "Project not found", target)
		assert.Contains(t, body, "data-close-modal", target)
	}

	full := get(t, s, "/portfolio/projects/99").Body.String()
	assert.Contains(t, full, "<html")
	assert.Contains(t, full, "Page not found")
}

func TestProjectImage_FallsBackOnLoadError(t *testing.T) {
	s := newTestServer(t, nil)

	fallback := `onerror="this.onerror=null;this.src='/static/placeholder.svg'"`
	for _, target := range []string{"/", "/portfolio", "/portfolio/projects/2"} {
		body := get(t, s, target).Body.String()
		assert.Contains(t, body, "/images/", target)
		assert.Contains(t, body, fallback, target)
	}
}

func TestProjectDetail_NoLink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog, err := portfolio.NewCatalog([]portfolio.Project{
		{ID: 1, Title: "Offline", Technologies: []string{"Go"}, Category: "Personal"},
	})
	require.NoError(t, err)
	s, err := NewServer(&config.Config{}, catalog, &fakeSender{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	body := get(t, s, "/portfolio/projects/1").Body.String()
	assert.NotContains(t, body, "Visit Website")
	assert.Contains(t, body, placeholderImage)
}

func TestCardSummaryTags(t *testing.T) {
	s := newTestServer(t, nil)

	body := get(t, s, "/portfolio/results?q=dkscore").Body.String()

	// DKSCORE has five tags: three are shown, the rest summarised.
	assert.Contains(t, body, "+2")
	assert.NotContains(t, body, "UI/UX")
}

func TestAPI_Projects(t *testing.T) {
	s := newTestServer(t, nil)

	w := get(t, s, "/api/projects?category=Professional&technology=SEO&q=landing")
	require.Equal(t, http.StatusOK, w.Code)

	var resp projectsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{1, 4}, resp.IDs)
	assert.Equal(t, portfolio.Criteria{Category: "Professional", Technology: "SEO", Query: "landing"}, resp.Criteria)
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, "Landing Page Optimization", resp.Projects[1].Title)
}

func TestAPI_ProjectsDefaults(t *testing.T) {
	s := newTestServer(t, nil)

	var resp projectsResponse
	require.NoError(t, json.Unmarshal(get(t, s, "/api/projects").Body.Bytes(), &resp))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, resp.IDs)
	assert.Equal(t, portfolio.DefaultCriteria(), resp.Criteria)

	require.NoError(t, json.Unmarshal(get(t, s, "/api/projects?q=nonexistentxyz").Body.Bytes(), &resp))
	assert.Empty(t, resp.IDs)
	assert.NotNil(t, resp.Projects)
}

func TestAPI_Project(t *testing.T) {
	s := newTestServer(t, nil)

	w := get(t, s, "/api/projects/5")
	require.Equal(t, http.StatusOK, w.Code)
	var p portfolio.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Mystic Brews", p.Title)

	assert.Equal(t, http.StatusNotFound, get(t, s, "/api/projects/77").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/projects/seven").Code)
}

func TestAPI_Indexes(t *testing.T) {
	s := newTestServer(t, nil)

	var techs struct{ Technologies []string }
	require.NoError(t, json.Unmarshal(get(t, s, "/api/technologies").Body.Bytes(), &techs))
	assert.Equal(t, portfolio.DistinctTechnologies(s.catalog.All()), techs.Technologies)

	var cats struct{ Categories []string }
	require.NoError(t, json.Unmarshal(get(t, s, "/api/categories").Body.Bytes(), &cats))
	assert.Equal(t, []string{"All", "Professional", "Personal"}, cats.Categories)

	assert.Equal(t, http.StatusOK, get(t, s, "/api/health").Code)
}

func postForm(t *testing.T, s *Server, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, s, req)
}

func TestContact_FormSuccess(t *testing.T) {
	sender := &fakeSender{}
	s := newTestServer(t, sender)

	w := postForm(t, s, url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Let's build something together"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent successfully!")
	require.Len(t, sender.got, 1)
	assert.Equal(t, "ada@example.com", sender.got[0].Email)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.contactSubmissions.WithLabelValues("sent")))
}

func TestContact_FormInvalid(t *testing.T) {
	sender := &fakeSender{}
	s := newTestServer(t, sender)

	w := postForm(t, s, url.Values{"name": {"A"}, "email": {"nope"}, "message": {"hi"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Name must be at least 2 characters.")
	assert.Contains(t, body, "Please enter a valid email address.")
	assert.Contains(t, body, "Message must be at least 10 characters.")
	assert.Empty(t, sender.got)
}

func TestContact_FormRelayFailure(t *testing.T) {
	s := newTestServer(t, &fakeSender{err: errors.New("relay down")})

	w := postForm(t, s, url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Let's build something together"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), contactFailedMessage)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.contactSubmissions.WithLabelValues("failed")))
}

func TestAPI_Contact(t *testing.T) {
	s := newTestServer(t, nil)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return do(t, s, req)
	}

	w := post(`{"name":"Ada","email":"ada@example.com","message":"Let's build something together"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "receipt-1")

	w = post(`{"name":"Ada","email":"bad","message":"Let's build something together"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a valid email address.")

	w = post(`{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_ContactRelayFailure(t *testing.T) {
	s := newTestServer(t, &fakeSender{err: contact.ErrRejected})

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Let's build something together"}`))
	req.Header.Set("Content-Type", "application/json")

	assert.Equal(t, http.StatusBadGateway, do(t, s, req).Code)
}

func TestVisitorTracking(t *testing.T) {
	s := newTestServer(t, nil)

	get(t, s, "/portfolio")
	get(t, s, "/portfolio?category=Personal")
	get(t, s, "/api/projects")
	get(t, s, "/static/site.css")

	dnt := httptest.NewRequest(http.MethodGet, "/about", nil)
	dnt.Header.Set("DNT", "1")
	do(t, s, dnt)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.pageVisits.WithLabelValues("/portfolio")))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.metrics.pageVisits.WithLabelValues("/about")))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.metrics.pageVisits.WithLabelValues("/api/projects")))
}

func TestHashIP(t *testing.T) {
	s := newTestServer(t, nil)

	a := s.hashIP("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, s.hashIP("203.0.113.7"))
	assert.NotEqual(t, a, s.hashIP("203.0.113.8"))
	assert.NotContains(t, a, "203")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	get(t, s, "/api/projects")

	w := get(t, s, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `portfolio_filter_evaluations_total{surface="api"} 1`)
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	w := get(t, s, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestSearchTrigger(t *testing.T) {
	assert.Equal(t, "keyup changed from:#search", filterView{}.SearchTrigger())
	assert.Equal(t, "keyup changed delay:300ms from:#search", filterView{Debounce: 300 * time.Millisecond}.SearchTrigger())
}
