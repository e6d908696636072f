package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ServeSuite drives the HTTP API through httptest.
type ServeSuite struct {
	suite.Suite
	srv *httptest.Server
}

func (s *ServeSuite) SetupTest() {
	h := NewRouter(log.New(io.Discard), ServerConfig{MaxExpansions: 100_000})
	s.srv = httptest.NewServer(h)
}

func (s *ServeSuite) TearDownTest() {
	s.srv.Close()
}

func (s *ServeSuite) post(body string) (*http.Response, map[string]any) {
	resp, err := http.Post(s.srv.URL+"/v1/cost", "application/json", strings.NewReader(body))
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func (s *ServeSuite) TestHealthz() {
	resp, err := http.Get(s.srv.URL + "/healthz")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.NotEmpty(s.T(), resp.Header.Get("X-Request-Id"))
}

func (s *ServeSuite) TestDigitGrid() {
	body := `{"grid": ["111", "191", "111"], "min_run": 1, "max_run": 3, "path": true}`
	resp, out := s.post(body)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Equal(s.T(), true, out["found"])
	require.Equal(s.T(), float64(4), out["cost"])
	require.Contains(s.T(), []any{"EESS", "SSEE"}, out["moves"])
	require.Equal(s.T(), resp.Header.Get("X-Request-Id"), out["id"])
}

func (s *ServeSuite) TestRowsWithEndpoints() {
	body := `{"rows": [[0, 5, 1], [1, 1, 1]], "start": {"x": 2, "y": 0}, "goal": {"x": 0, "y": 1},
		"min_run": 1, "max_run": 2, "all_seeds": true, "frontier": "bucket"}`
	resp, out := s.post(body)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Equal(s.T(), true, out["found"])
	require.Equal(s.T(), float64(3), out["cost"])
}

func (s *ServeSuite) TestUnreachableIsNotAnError() {
	resp, out := s.post(`{"grid": ["111", "191", "111"], "min_run": 4, "max_run": 10}`)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Equal(s.T(), false, out["found"])
}

func (s *ServeSuite) TestConfigErrors() {
	cases := []struct {
		body  string
		field string
	}{
		{`{"grid": ["111"], "min_run": 3, "max_run": 2}`, "maxRun"},
		{`{"grid": ["111"], "min_run": 0, "max_run": 2}`, "minRun"},
		{`{"grid": ["111"], "goal": {"x": 5, "y": 0}, "min_run": 1, "max_run": 2}`, "goal"},
		{`{"grid": ["11", "1"], "min_run": 1, "max_run": 2}`, "grid"},
		{`{"grid": ["1a"], "min_run": 1, "max_run": 2}`, "grid"},
		{`{"rows": [], "min_run": 1, "max_run": 2}`, "grid"},
		{`{"grid": ["11"], "rows": [[1]], "min_run": 1, "max_run": 2}`, "grid"},
		{`{"grid": ["11"], "min_run": 1, "max_run": 2, "frontier": "fifo"}`, "frontier"},
	}
	for _, tc := range cases {
		resp, out := s.post(tc.body)
		require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode, tc.body)
		require.Equal(s.T(), tc.field, out["field"], tc.body)
		require.NotEmpty(s.T(), out["error"], tc.body)
	}
}

func (s *ServeSuite) TestBadJSON() {
	for _, body := range []string{`{`, `{"grid": ["1"], "unknown": 1}`} {
		resp, out := s.post(body)
		require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode, body)
		require.Contains(s.T(), out["error"], "bad request body")
	}
}

func (s *ServeSuite) TestBudgetExceeded() {
	h := NewRouter(log.New(io.Discard), ServerConfig{MaxExpansions: 3})
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/cost", "application/json",
		strings.NewReader(`{"grid": ["11111", "11111", "11111", "11111"], "min_run": 1, "max_run": 3}`))
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *ServeSuite) TestRequestIDPropagates() {
	req, err := http.NewRequest(http.MethodPost, s.srv.URL+"/v1/cost",
		strings.NewReader(`{"grid": ["12", "34"], "min_run": 1, "max_run": 3}`))
	require.NoError(s.T(), err)
	req.Header.Set("X-Request-Id", "req-42")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	var out costResponse
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(s.T(), "req-42", out.ID)
	require.True(s.T(), out.Found)
	require.Equal(s.T(), int64(6), out.Cost)
}

// Entry point for running the suite.
func TestServeSuite(t *testing.T) {
	suite.Run(t, new(ServeSuite))
}
