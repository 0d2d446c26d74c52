package handlers

import (
	"net/http"
	"strings"
	"testing"

	"yatube/storage"
)

func TestMediaServesStoredFile(t *testing.T) {
	server := startServer(t)
	client := newTestClient(t, server)

	if _, err := storage.Get().Save("posts/hello.txt", strings.NewReader("stored bytes")); err != nil {
		t.Fatal(err)
	}
	resp := client.get("/media/posts/hello.txt")
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
	if body != "stored bytes" {
		t.Fatalf("body = %q", body)
	}
}

func TestMediaRejectsTraversal(t *testing.T) {
	server := startServer(t)
	client := newTestClient(t, server)

	req, err := http.NewRequest("GET", server.URL+"/media/foo/../../etc/passwd", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.URL.Path = "/media/foo/../../etc/passwd"
	req.URL.RawPath = ""
	resp, err := client.client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d, want 404", resp.StatusCode)
	}
}

func TestMediaMissingFile(t *testing.T) {
	server := startServer(t)
	client := newTestClient(t, server)

	resp := client.get("/media/posts/no-such-file.jpg")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d, want 404", resp.StatusCode)
	}
}
