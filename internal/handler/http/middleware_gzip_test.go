// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-config-sets/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, body io.Reader) string {
	t.Helper()

	zr, err := gzip.NewReader(body)
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func echoHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(status)
		if len(body) > 0 {
			w.Write(body)
			return
		}
		w.Write([]byte(`{"bot-1":{"serial_number":"1"}}`))
	})
}

func TestWithGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            string
		wantGzipped     bool
		wantBody        string
	}{
		{
			name:           "compresses when accepted",
			acceptEncoding: "gzip",
			wantGzipped:    true,
			wantBody:       `{"bot-1":{"serial_number":"1"}}`,
		},
		{
			name:           "accepts gzip among several encodings",
			acceptEncoding: "deflate, gzip;q=0.9, br",
			wantGzipped:    true,
			wantBody:       `{"bot-1":{"serial_number":"1"}}`,
		},
		{
			name:     "plain without accept-encoding",
			wantBody: `{"bot-1":{"serial_number":"1"}}`,
		},
		{
			name:            "inflates gzipped request",
			contentEncoding: "gzip",
			body:            `{"name":"bot-2"}`,
			wantBody:        `{"name":"bot-2"}`,
		},
		{
			name:            "inflates request and compresses response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			body:            `{"theme":"dark"}`,
			wantGzipped:     true,
			wantBody:        `{"theme":"dark"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				if tt.contentEncoding != "" {
					body = gzipBytes(t, []byte(tt.body))
				} else {
					body = strings.NewReader(tt.body)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/configs", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(echoHandler(http.StatusOK)).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/configs", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusOK)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"msg":"`+app.MsgInvalidDataProvided+`"}`, rr.Body.String())
}

func TestWithGZip_NoContentIsNotCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodDelete, "/api/configs/bot-1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWithGZip_KeepsStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/configs", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusConflict)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestWithGZip_ShrinksLargeLists(t *testing.T) {
	payload := strings.Repeat(`{"bot_type":"MaiBot","mai_path":"/srv/bots/mai"},`, 500)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})
	req := httptest.NewRequest(http.MethodGet, "/api/configs", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(payload)/10)
	assert.Equal(t, payload, gunzip(t, rr.Body))
}

func TestWithGZip_ConcurrentPoolUse(t *testing.T) {
	handler := withGZip(echoHandler(http.StatusOK))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/api/configs", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			out, _ := io.ReadAll(zr)
			assert.Equal(t, `{"bot-1":{"serial_number":"1"}}`, string(out))
		}()
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	wrapped := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { called = true }}

	assert.NoError(t, wrapped.Close())
	assert.True(t, called)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}
