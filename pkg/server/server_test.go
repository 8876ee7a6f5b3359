package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

type fakeSource struct {
	week  timetable.WeekSchedule
	exams []timetable.ExamDay
	stale bool
	err   error
	last  timetable.Request
}

func (f *fakeSource) FetchWeek(_ context.Context, req timetable.Request) (*timetable.Result, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &timetable.Result{Week: f.week, Stale: f.stale}, nil
}

func (f *fakeSource) FetchExams(_ context.Context, req timetable.Request) (*timetable.ExamResult, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &timetable.ExamResult{Days: f.exams, Stale: f.stale}, nil
}

var week = timetable.WeekSchedule{
	{Day: "Monday", Data: []timetable.TimeSlot{
		{Start: "8:00", End: "9:00", Value: "CE 3A 141 (P) SMITH (GF1)"},
		{Start: "9:00", End: "10:00", Value: "CE 3A 141 (P) SMITH (GF1)"},
	}},
	{Day: "Tuesday", Data: []timetable.TimeSlot{
		{Start: "10:00", End: "11:00", Value: "CE 3A 375 NETWORKS\nCE 3B 361 LAB"},
	}},
}

// Wednesday 4 March 2026, 10:00 UTC
var fixedNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newTestServer(src *fakeSource) *httptest.Server {
	s := New(src, nil, Config{Draft: "Draft_2", ExamDraft: "Draft_3", Location: time.UTC}, nil)
	s.now = func() time.Time { return fixedNow }
	return httptest.NewServer(s.Router())
}

type layoutResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Stale   bool          `json:"stale"`
	Data    layout.Layout `json:"data"`
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestTimetableWeek(t *testing.T) {
	src := &fakeSource{week: week}
	ts := newTestServer(src)
	defer ts.Close()

	var body layoutResponse
	code := getJSON(t, ts.URL+"/api/v1/timetable?dept=ce&year=3", &body)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)
	assert.Equal(t, timetable.Request{Filename: "Draft_2", ClassPattern: "CE 3"}, src.last)

	l := body.Data
	assert.Equal(t, layout.ViewWeek, l.View)
	require.Len(t, l.Days, 5)
	assert.True(t, l.Now.Visible)

	monday := l.Days[0]
	require.Len(t, monday.Blocks, 1, "adjacent identical slots merge")
	assert.Equal(t, "8:00", monday.Blocks[0].Event.Start)
	assert.Equal(t, "10:00", monday.Blocks[0].Event.End)

	assert.Len(t, l.Days[1].Blocks, 2)
	assert.True(t, l.Days[2].Empty)
}

func TestTimetableDayView(t *testing.T) {
	ts := newTestServer(&fakeSource{week: week})
	defer ts.Close()

	var body layoutResponse
	code := getJSON(t, ts.URL+"/api/v1/timetable?dept=CE&year=3&view=day&day=tuesday&theme=dark", &body)
	require.Equal(t, http.StatusOK, code)

	l := body.Data
	require.Len(t, l.Days, 1)
	assert.Equal(t, "Tuesday", l.Days[0].Day)
	require.Len(t, l.Days[0].Blocks, 2)
	for _, b := range l.Days[0].Blocks {
		assert.True(t, b.Event.IsOverlapping)
		assert.Equal(t, 40, b.Geometry.MinHeightPx)
	}
}

func TestTimetableDefaultsToToday(t *testing.T) {
	ts := newTestServer(&fakeSource{week: week})
	defer ts.Close()

	var body layoutResponse
	getJSON(t, ts.URL+"/api/v1/timetable?dept=CE&year=3&view=day", &body)
	require.Len(t, body.Data.Days, 1)
	assert.Equal(t, "Wednesday", body.Data.Days[0].Day)
	assert.True(t, body.Data.Days[0].Empty)
}

func TestTimetableBadQuery(t *testing.T) {
	ts := newTestServer(&fakeSource{week: week})
	defer ts.Close()

	for _, q := range []string{
		"",
		"dept=CE",
		"dept=CE&year=x",
		"dept=CE&year=9",
		"dept=CE&year=3&view=month",
		"dept=CE&year=3&theme=sepia",
		"dept=CE&year=3&day=Saturday",
	} {
		var body Response
		code := getJSON(t, ts.URL+"/api/v1/timetable?"+q, &body)
		assert.Equal(t, http.StatusBadRequest, code, q)
		assert.False(t, body.Success, q)
	}
}

func TestTimetableUpstreamErrors(t *testing.T) {
	src := &fakeSource{err: timetable.ErrNotFound}
	ts := newTestServer(src)
	defer ts.Close()

	var body Response
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/v1/timetable?dept=CE&year=3", &body))

	src.err = errors.New("connection refused")
	assert.Equal(t, http.StatusBadGateway, getJSON(t, ts.URL+"/api/v1/timetable?dept=CE&year=3", &body))
	assert.NotContains(t, body.Message, "refused")
}

func TestTimetableStaleFlag(t *testing.T) {
	ts := newTestServer(&fakeSource{week: week, stale: true})
	defer ts.Close()

	var body layoutResponse
	getJSON(t, ts.URL+"/api/v1/timetable?dept=CE&year=3", &body)
	assert.True(t, body.Stale)
}

func TestExams(t *testing.T) {
	src := &fakeSource{exams: []timetable.ExamDay{
		{Day: "Monday, 2nd March 2026", Data: []timetable.ExamData{
			{Start: "9:00", End: "12:00", Value: "CE 371 COMPILERS", Class: "CE 3A", Location: "GF1"},
			{Start: "9:00", End: "12:00", Value: "CE 371 COMPILERS", Class: "CE 3B", Location: "GF2"},
		}},
		{Day: "Friday, 13th March 2026", Data: []timetable.ExamData{
			{Start: "13:00", End: "15:00", Value: "CE 375 NETWORKS", Class: "CE 3A", Location: "GF1"},
		}},
	}}
	ts := newTestServer(src)
	defer ts.Close()

	var body struct {
		Data struct {
			Classes []string              `json:"classes"`
			Groups  []timetable.ExamGroup `json:"groups"`
		} `json:"data"`
	}
	code := getJSON(t, ts.URL+"/api/v1/exams?dept=CE&year=3&class=CE+3B", &body)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Draft_3", src.last.Filename)
	assert.Equal(t, []string{"CE 3A", "CE 3B"}, body.Data.Classes)
	require.Len(t, body.Data.Groups, 1)
	assert.Equal(t, "GF2", body.Data.Groups[0].Subjects[0].Exams[0].Location)

	code = getJSON(t, ts.URL+"/api/v1/exams?dept=CE&year=3&range=next", &body)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Groups, 1)
	assert.Equal(t, "CE 375 NETWORKS", body.Data.Groups[0].Subjects[0].Name)

	var bad Response
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/v1/exams?dept=CE&year=3&range=soon", &bad))
}

func TestHealthAndDepartments(t *testing.T) {
	ts := newTestServer(&fakeSource{})
	defer ts.Close()

	var health Response
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/healthz", &health))
	assert.True(t, health.Success)

	var deps struct {
		Data struct {
			Departments []timetable.Department `json:"departments"`
			Years       []timetable.Year       `json:"years"`
		} `json:"data"`
	}
	getJSON(t, ts.URL+"/api/v1/departments", &deps)
	assert.Len(t, deps.Data.Departments, len(timetable.Departments))
	assert.Len(t, deps.Data.Years, len(timetable.Years))
}

func TestCORSHeaders(t *testing.T) {
	ts := newTestServer(&fakeSource{})
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	s := New(&fakeSource{}, nil, Config{MaxRequests: 2}, nil)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	var last int
	for i := 0; i < 3; i++ {
		resp, err := http.Get(ts.URL + "/healthz")
		require.NoError(t, err)
		resp.Body.Close()
		last = resp.StatusCode
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func fetchPage(t *testing.T, url string) *goquery.Document {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func TestPageWeek(t *testing.T) {
	ts := newTestServer(&fakeSource{week: week})
	defer ts.Close()

	doc := fetchPage(t, ts.URL+"/?dept=CE&year=3")

	assert.Equal(t, "CE 3 timetable", doc.Find("title").Text())
	assert.Equal(t, 5, doc.Find(".row").Length())
	assert.Equal(t, 3, doc.Find(".block").Length())
	assert.Equal(t, 3, doc.Find(".empty").Length())
	assert.Equal(t, 1, doc.Find(".now").Length())

	monday := doc.Find(`.block[data-day="Monday"]`)
	require.Equal(t, 1, monday.Length())
	assert.Contains(t, monday.Text(), "CE 3A 141 (P) SMITH (GF1)")

	style, _ := monday.Attr("style")
	assert.Contains(t, style, "height: 100.0000%")
	assert.Contains(t, style, "background: #")
}

func TestPageDayNavigation(t *testing.T) {
	ts := newTestServer(&fakeSource{week: week})
	defer ts.Close()

	doc := fetchPage(t, ts.URL+"/?dept=CE&year=3&view=day&day=Monday")

	assert.Equal(t, 0, doc.Find("a.prev").Length(), "no day before Monday")
	next, ok := doc.Find("a.next").Attr("href")
	require.True(t, ok)
	assert.Contains(t, next, "day=Tuesday")
	assert.Contains(t, next, "view=day")

	block := doc.Find(".block")
	require.Equal(t, 1, block.Length())
	assert.Equal(t, "8:00-10:00", block.Find(".time").Text())
	style, _ := block.Attr("style")
	assert.Contains(t, style, "min-height: 40px")
}

func TestPageBadQuery(t *testing.T) {
	ts := newTestServer(&fakeSource{week: week})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/?dept=CE")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTimetableDropsMalformedTimes(t *testing.T) {
	bad := timetable.WeekSchedule{{Day: "Monday", Data: []timetable.TimeSlot{
		{Start: "8:00", End: "9:00", Value: "CE 3A 141 A"},
		{Start: "noon", End: "13:00", Value: "CE 3A 143 B"},
	}}}
	ts := newTestServer(&fakeSource{week: bad})
	defer ts.Close()

	var body layoutResponse
	code := getJSON(t, ts.URL+"/api/v1/timetable?dept=CE&year=3", &body)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Days[0].Blocks, 1)
	assert.Equal(t, "CE 3A 141 A", body.Data.Days[0].Blocks[0].Event.Value)
}
