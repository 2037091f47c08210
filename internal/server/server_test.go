// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperlist/pkg/types"
)

const sampleHeader = "Journal,Organization,Published Date,Authors,Title,Title URL,PDF URL,Vol URL,Vol Title"

// newCSVSource serves n well-formed rows and counts requests.
func newCSVSource(t *testing.T, n int, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		fmt.Fprintln(w, sampleHeader)
		for i := 1; i <= n; i++ {
			fmt.Fprintf(w, "J%d,Org,2026-01-01,Author %d,Title %d,,,,\n", i, i, i)
		}
	}))
}

func newTestServer(t *testing.T, sourceURL string, pageSize int) *Server {
	t.Helper()
	return New(
		types.SourceConfig{URL: sourceURL},
		types.ViewConfig{PageSize: pageSize},
	)
}

func getPapers(t *testing.T, ts *httptest.Server, query string) papersResponse {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + "/api/papers" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out papersResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestServer_LoadingStateBeforeLoad(t *testing.T) {
	s := newTestServer(t, "https://example.org/sheet.csv", 20)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	out := getPapers(t, ts, "")
	assert.Equal(t, "loading", out.State)
	assert.Empty(t, out.Papers)
}

func TestServer_PapersEndToEnd(t *testing.T) {
	src := newCSVSource(t, 45, nil)
	defer src.Close()

	s := newTestServer(t, src.URL, 20)
	s.load(context.Background())

	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	out := getPapers(t, ts, "")
	assert.Equal(t, "ready", out.State)
	assert.Equal(t, 45, out.Total)
	assert.Equal(t, 3, out.TotalPages)
	assert.Len(t, out.Papers, 20)
	assert.Equal(t, "Title 1", out.Papers[0].Title)

	out = getPapers(t, ts, "?page=3")
	assert.Len(t, out.Papers, 5)
	assert.Equal(t, "Title 41", out.Papers[0].Title)

	out = getPapers(t, ts, "?page=4")
	assert.Empty(t, out.Papers)
	assert.Equal(t, 3, out.TotalPages)
}

func TestServer_QueryChangeResetsPage(t *testing.T) {
	src := newCSVSource(t, 45, nil)
	defer src.Close()

	s := newTestServer(t, src.URL, 20)
	s.load(context.Background())

	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	out := getPapers(t, ts, "?page=3")
	require.Equal(t, 3, out.Page)

	// New query with a stale page parameter: the server resets to page 1.
	out = getPapers(t, ts, "?q=Title+4&page=3")
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 7, out.Filtered)
}

func TestServer_InvalidPageParameter(t *testing.T) {
	s := newTestServer(t, "https://example.org/sheet.csv", 20)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	for _, bad := range []string{"?page=zero", "?page=-1", "?page=0"} {
		resp, err := ts.Client().Get(ts.URL + "/api/papers" + bad)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, bad)
	}
}

func TestServer_FailedLoadSurfacesError(t *testing.T) {
	src := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer src.Close()

	s := newTestServer(t, src.URL, 20)
	s.load(context.Background())

	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	out := getPapers(t, ts, "")
	assert.Equal(t, "failed", out.State)
	assert.NotEmpty(t, out.Error)
	assert.Zero(t, out.Total)
}

func TestServer_Reload(t *testing.T) {
	var calls int32
	src := newCSVSource(t, 3, &calls)
	defer src.Close()

	s := newTestServer(t, src.URL, 20)
	s.load(context.Background())

	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	resp, err := ts.Client().Post(ts.URL+"/api/reload", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out papersResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ready", out.State)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	// Reload is POST-only.
	getResp, err := ts.Client().Get(ts.URL + "/api/reload")
	require.NoError(t, err)
	getResp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, getResp.StatusCode)
}

func TestServer_IndexAndHealthcheck(t *testing.T) {
	s := newTestServer(t, "https://example.org/sheet.csv", 20)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp, err = ts.Client().Get(ts.URL + "/healthcheck")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = ts.Client().Get(ts.URL + "/no-such-page")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
