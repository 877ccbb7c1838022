package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/textmetrics"
)

func testServer() *server {
	return &server{
		logger:   zerolog.Nop(),
		lexicons: textmetrics.DefaultLexicons(),
		fetcher:  textmetrics.NewFetcher(),
	}
}

func postAnalyze(t *testing.T, s *server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)
	return rec
}

func TestHandleAnalyzeText(t *testing.T) {
	rec := postAnalyze(t, testServer(), `{"text": "I love this wonderful product. It is amazing and I would buy it again."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rep Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "text", rep.Source)
	assert.Equal(t, 2, rep.Metrics.SentenceCount)
	assert.Greater(t, rep.Metrics.Polarity, 0.0)
	assert.Greater(t, rep.Metrics.PositiveWords, 0)
}

func TestHandleAnalyzeFromURL(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("A wonderful page about amazing things."))
	}))
	defer page.Close()

	rec := postAnalyze(t, testServer(), `{"url": "`+page.URL+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var rep Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, page.URL, rep.Source)
	assert.Greater(t, rep.Metrics.WordCount, 0)
}

func TestHandleAnalyzeRejectsBoth(t *testing.T) {
	rec := postAnalyze(t, testServer(), `{"text": "hello", "url": "http://example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeEmptyText(t *testing.T) {
	for _, body := range []string{`{"text": ""}`, `{"text": "   "}`, `{}`} {
		rec := postAnalyze(t, testServer(), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHandleAnalyzeBadJSON(t *testing.T) {
	rec := postAnalyze(t, testServer(), `{"text": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error.Message, "invalid request body")
}

func TestHandleAnalyzeNonTextURL(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer page.Close()

	rec := postAnalyze(t, testServer(), `{"url": "`+page.URL+`"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleAnalyzeUnreachableURL(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	page.Close()

	rec := postAnalyze(t, testServer(), `{"url": "`+page.URL+`"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().handleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
