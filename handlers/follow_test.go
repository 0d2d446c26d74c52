package handlers

import (
	"net/http"
	"strings"
	"testing"

	"yatube/models"
)

func TestFollowUnfollowFlow(t *testing.T) {
	server := startServer(t)
	author := newTestClient(t, server)
	leo := author.signup("leo", "pass-word-1")
	mustPostRow(t, leo.ID, nil, "words worth following")

	reader := newTestClient(t, server)
	oliver := reader.signup("oliver", "pass-word-2")

	// empty before following
	body := readBody(t, reader.get("/follow/"))
	if strings.Contains(body, "words worth following") {
		t.Fatal("follow feed shows posts before following anyone")
	}

	resp := reader.get("/profile/leo/follow/")
	wantRedirect(t, resp, "/profile/leo/")
	if !models.IsFollowing(oliver.ID, leo.ID) {
		t.Fatal("follow row missing")
	}

	body = readBody(t, reader.get("/follow/"))
	if !strings.Contains(body, "words worth following") {
		t.Fatalf("follow feed misses the followed author's post:\n%s", body)
	}

	// repeat follow is a no-op
	resp = reader.get("/profile/leo/follow/")
	wantRedirect(t, resp, "/profile/leo/")

	resp = reader.get("/profile/leo/unfollow/")
	wantRedirect(t, resp, "/profile/leo/")
	if models.IsFollowing(oliver.ID, leo.ID) {
		t.Fatal("follow row survived unfollow")
	}

	body = readBody(t, reader.get("/follow/"))
	if strings.Contains(body, "words worth following") {
		t.Fatal("follow feed still shows posts after unfollow")
	}
}

func TestSelfFollowOverHTTP(t *testing.T) {
	server := startServer(t)
	client := newTestClient(t, server)
	leo := client.signup("leo", "pass-word-1")

	resp := client.get("/profile/leo/follow/")
	wantRedirect(t, resp, "/profile/leo/")
	if models.IsFollowing(leo.ID, leo.ID) {
		t.Fatal("user ended up following themselves")
	}
}

func TestFollowUnknownAuthor(t *testing.T) {
	server := startServer(t)
	client := newTestClient(t, server)
	client.signup("leo", "pass-word-1")

	resp := client.get("/profile/nobody/follow/")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d, want 404", resp.StatusCode)
	}
}
