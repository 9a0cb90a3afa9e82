package gcs

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func staticTokenSource(token string) *tokenSource {
	return &tokenSource{fetch: func(context.Context) (string, time.Time, error) {
		return token, time.Now().Add(time.Hour), nil
	}}
}

func TestUploadSuccess(t *testing.T) {
	t.Parallel()

	var gotURL string
	client := &Client{
		defaultBucket: "bp-community-media",
		tokenSource:   staticTokenSource("token"),
		httpClient: &http.Client{Transport: roundTripFunc(func(req *http.Request) *http.Response {
			if req.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", req.Method)
			}
			if req.Header.Get("Authorization") != "Bearer token" {
				t.Fatalf("unexpected auth %s", req.Header.Get("Authorization"))
			}
			if req.Header.Get("Content-Type") != "image/png" {
				t.Fatalf("unexpected content type %s", req.Header.Get("Content-Type"))
			}
			gotURL = req.URL.String()
			body, _ := io.ReadAll(req.Body)
			if string(body) != "png-bytes" {
				t.Fatalf("unexpected body %q", string(body))
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"name":"partner-images/club.png"}`)),
				Header:     http.Header{},
			}
		})},
	}

	publicURL, err := client.Upload(context.Background(), "partner-images/club.png", "image/png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if !strings.Contains(gotURL, "/upload/storage/v1/b/bp-community-media/o") {
		t.Fatalf("unexpected upload url %s", gotURL)
	}
	if !strings.Contains(gotURL, "uploadType=media") {
		t.Fatalf("upload url missing uploadType: %s", gotURL)
	}
	if !strings.Contains(gotURL, "name=partner-images%2Fclub.png") {
		t.Fatalf("upload url missing object name: %s", gotURL)
	}
	want := "https://storage.googleapis.com/bp-community-media/partner-images/club.png"
	if publicURL != want {
		t.Fatalf("expected public url %s, got %s", want, publicURL)
	}
}

func TestUploadRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	client := &Client{
		defaultBucket: "bucket",
		tokenSource:   staticTokenSource("token"),
		httpClient:    &http.Client{},
	}

	if _, err := client.Upload(context.Background(), "", "image/png", []byte("data")); err == nil {
		t.Fatal("expected error for empty object path")
	}
	if _, err := client.Upload(context.Background(), "obj.png", "image/png", nil); err == nil {
		t.Fatal("expected error for empty data")
	}
}

func TestUploadUpstreamError(t *testing.T) {
	t.Parallel()

	client := &Client{
		defaultBucket: "bucket",
		tokenSource:   staticTokenSource("token"),
		httpClient: &http.Client{Transport: roundTripFunc(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusForbidden,
				Status:     "403 Forbidden",
				Body:       io.NopCloser(strings.NewReader(`{"error":"denied"}`)),
				Header:     http.Header{},
			}
		})},
	}

	if _, err := client.Upload(context.Background(), "obj.png", "image/png", []byte("data")); err == nil {
		t.Fatal("expected upstream error")
	}
}

func TestDeleteSuccessAndNotFound(t *testing.T) {
	t.Parallel()

	status := http.StatusNoContent
	client := &Client{
		defaultBucket: "bucket",
		tokenSource:   staticTokenSource("token"),
		httpClient: &http.Client{Transport: roundTripFunc(func(req *http.Request) *http.Response {
			if req.Method != http.MethodDelete {
				t.Fatalf("expected DELETE, got %s", req.Method)
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader("")),
				Header:     http.Header{},
			}
		})},
	}

	if err := client.Delete(context.Background(), "partner-images/old.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	status = http.StatusNotFound
	if err := client.Delete(context.Background(), "partner-images/old.png"); err != nil {
		t.Fatalf("Delete not found should succeed: %v", err)
	}
}

func TestPublicURLEscapesSegments(t *testing.T) {
	t.Parallel()

	client := &Client{defaultBucket: "bucket"}
	got := client.PublicURL("partner-images/padel club-123.png")
	want := "https://storage.googleapis.com/bucket/partner-images/padel%20club-123.png"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
