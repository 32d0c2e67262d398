package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-fracture/pkg/fracture"
	"github.com/0x0FACED/go-fracture/pkg/logger"
)

func testServer() *httptest.Server {
	srv := &server{opts: logger.Options{Level: zapcore.InfoLevel, NoColor: true}}
	return httptest.NewServer(srv.routes())
}

func TestDiagramPage(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, err := http.PostForm(ts.URL+"/", url.Values{
		"width":    {"500"},
		"height":   {"400"},
		"stations": {"7"},
		"strategy": {"uniform"},
		"seed":     {"42"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body strings.Builder
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	page := body.String()

	assert.Contains(t, page, "Логи")
	assert.Contains(t, page, "diagram ready")
	assert.Contains(t, page, `value="500"`)
	assert.Contains(t, page, "/shards.stl?")
	assert.Contains(t, page, `<form method="POST" action="/">`)
}

func TestSTLEndpoints(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	for _, path := range []string{
		"/shards.stl?stations=9&seed=3&strategy=middle",
		"/cube.stl?stations=5&seed=8",
	} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + path)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "model/stl", resp.Header.Get("Content-Type"))

			var body strings.Builder
			_, err = body.ReadFrom(resp.Body)
			require.NoError(t, err)
			n := body.Len()
			assert.Greater(t, n, 84)
			assert.Zero(t, (n-84)%50)
		})
	}
}

func TestParseParams(t *testing.T) {
	log := logger.Nop()
	req := httptest.NewRequest(http.MethodGet, "/?width=50&height=300&stations=abc&seed=-4&strategy=spiral&margin=2.5", nil)
	p := parseParams(req, log)

	want := defaultParams()
	want.Height = 300
	want.Seed = -4
	want.Margin = 2.5
	assert.Equal(t, want, p)

	req = httptest.NewRequest(http.MethodGet, "/?random=true", nil)
	p = parseParams(req, log)
	assert.Equal(t, fracture.Uniform, p.Strategy)
	assert.Zero(t, p.Seed)

	q := defaultParams().query()
	assert.Equal(t, "grid", q.Get("strategy"))
	assert.Equal(t, "1000", q.Get("width"))
}
