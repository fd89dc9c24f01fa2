package client

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// compressBody encodes the payload with the named encoding for the test server.
func compressBody(t *testing.T, encoding string, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	switch encoding {
	case "gzip":
		w := gzip.NewWriter(&buf)
		_, _ = w.Write(payload)
		_ = w.Close()
	case "br":
		w := brotli.NewWriter(&buf)
		_, _ = w.Write(payload)
		_ = w.Close()
	case "zstd":
		w, _ := zstd.NewWriter(&buf)
		_, _ = w.Write(payload)
		_ = w.Close()
	default:
		buf.Write(payload)
	}
	return buf.Bytes()
}

func TestCompressionTransport_Decompression(t *testing.T) {
	payload := []byte(`{"data":{"programSets":{"edges":[],"totalCount":0}}}`)

	tests := []struct {
		name            string
		contentEncoding string
		bodyEncoding    string
		wantHeaderKept  bool
	}{
		{name: "gzip", contentEncoding: "gzip", bodyEncoding: "gzip"},
		{name: "brotli", contentEncoding: "br", bodyEncoding: "br"},
		{name: "zstd", contentEncoding: "zstd", bodyEncoding: "zstd"},
		{name: "comma list decodes outermost", contentEncoding: "identity, gzip", bodyEncoding: "gzip"},
		{name: "whitespace tolerated", contentEncoding: " gzip ", bodyEncoding: "gzip"},
		{name: "identity untouched", contentEncoding: "", bodyEncoding: ""},
		{name: "unknown encoding passed through", contentEncoding: "unknown-encoding", bodyEncoding: "", wantHeaderKept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Accept-Encoding"); got != "gzip, br, zstd" {
					t.Errorf("Accept-Encoding = %q, want advertised codecs", got)
				}
				if tt.contentEncoding != "" {
					w.Header().Set("Content-Encoding", tt.contentEncoding)
				}
				_, _ = w.Write(compressBody(t, tt.bodyEncoding, payload))
			}))
			defer server.Close()

			httpClient := &http.Client{Transport: newCompressionTransport(nil)}
			resp, err := httpClient.Get(server.URL)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			if !bytes.Equal(body, payload) {
				t.Errorf("body = %q, want %q", body, payload)
			}

			headerAfter := resp.Header.Get("Content-Encoding")
			if tt.wantHeaderKept && headerAfter == "" {
				t.Error("Content-Encoding must survive for encodings we do not decode")
			}
			if !tt.wantHeaderKept && headerAfter != "" {
				t.Errorf("Content-Encoding = %q, want removed after decompression", headerAfter)
			}
		})
	}
}

func TestCompressionTransport_PreserveExistingAcceptEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept-Encoding"); got != "gzip" {
			t.Errorf("Accept-Encoding = %q, want the caller's value preserved", got)
		}
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Accept-Encoding", "gzip")

	httpClient := &http.Client{Transport: newCompressionTransport(nil)}
	resp, err := httpClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
}

func TestCompressionTransport_NoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: newCompressionTransport(nil)}
	resp, err := httpClient.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}

func TestOuterEncoding(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"   ", ""},
		{"gzip", "gzip"},
		{"br", "br"},
		{"zstd", "zstd"},
		{" gzip ", "gzip"},
		{"identity, gzip", "gzip"},
		{"gzip, br", "br"},
		{"GZIP", "gzip"},
	}

	for _, tt := range tests {
		if got := outerEncoding(tt.header); got != tt.want {
			t.Errorf("outerEncoding(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
