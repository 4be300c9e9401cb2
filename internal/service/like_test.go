package service_test

import (
	"VidTube/internal/service"
	"context"
	"testing"
)

func TestToggleVideoLikeRoundTrip(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "uploader")
	fan := createTestUser(t, "fan")
	video := createTestVideo(t, owner.ID, "likable")
	ctx := context.Background()

	result, err := service.ToggleVideoLike(ctx, video.ID, fan.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if result.Toggled != "added" {
		t.Fatalf("expected added, got %q", result.Toggled)
	}

	liked, err := service.GetLikedVideos(fan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(liked) != 1 || liked[0].Video.ID != video.ID {
		t.Fatalf("expected liked video %d in listing", video.ID)
	}

	result, err = service.ToggleVideoLike(ctx, video.ID, fan.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if result.Toggled != "removed" {
		t.Fatalf("expected removed, got %q", result.Toggled)
	}

	liked, err = service.GetLikedVideos(fan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(liked) != 0 {
		t.Fatalf("expected empty listing after un-like, got %d", len(liked))
	}

	// A full round trip lands back where it started.
	result, _ = service.ToggleVideoLike(ctx, video.ID, fan.ID)
	if result.Toggled != "added" {
		t.Fatalf("expected added after round trip, got %q", result.Toggled)
	}
}

func TestToggleCommentAndTweetLike(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "uploader")
	fan := createTestUser(t, "fan")
	video := createTestVideo(t, owner.ID, "commented")
	ctx := context.Background()

	comment, err := service.AddVideoComment(video.ID, owner.ID, "first!")
	if err != nil {
		t.Fatal(err)
	}
	tweet := createTestTweet(t, owner.ID, "hello world")

	if r, _ := service.ToggleCommentLike(ctx, comment.ID, fan.ID); r.Toggled != "added" {
		t.Fatalf("expected comment like added, got %q", r.Toggled)
	}
	if r, _ := service.ToggleTweetLike(ctx, tweet.ID, fan.ID); r.Toggled != "added" {
		t.Fatalf("expected tweet like added, got %q", r.Toggled)
	}

	likedComments, err := service.GetLikedComments(fan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(likedComments) != 1 || likedComments[0].Comment.ID != comment.ID {
		t.Fatal("liked comment missing from listing")
	}

	likedTweets, err := service.GetLikedTweets(fan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(likedTweets) != 1 || likedTweets[0].Tweet.ID != tweet.ID {
		t.Fatal("liked tweet missing from listing")
	}

	if r, _ := service.ToggleCommentLike(ctx, comment.ID, fan.ID); r.Toggled != "removed" {
		t.Fatalf("expected comment like removed, got %q", r.Toggled)
	}
	if r, _ := service.ToggleTweetLike(ctx, tweet.ID, fan.ID); r.Toggled != "removed" {
		t.Fatalf("expected tweet like removed, got %q", r.Toggled)
	}
}

func TestLikesAreViewerScoped(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "uploader")
	fanA := createTestUser(t, "fan_a")
	fanB := createTestUser(t, "fan_b")
	video := createTestVideo(t, owner.ID, "popular")
	ctx := context.Background()

	if _, err := service.ToggleVideoLike(ctx, video.ID, fanA.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := service.ToggleVideoLike(ctx, video.ID, fanB.ID); err != nil {
		t.Fatal(err)
	}

	likedA, _ := service.GetLikedVideos(fanA.ID)
	likedB, _ := service.GetLikedVideos(fanB.ID)
	if len(likedA) != 1 || len(likedB) != 1 {
		t.Fatalf("each fan should see one liked video, got %d and %d", len(likedA), len(likedB))
	}

	// One fan backing out leaves the other's like in place.
	if _, err := service.ToggleVideoLike(ctx, video.ID, fanA.ID); err != nil {
		t.Fatal(err)
	}
	likedA, _ = service.GetLikedVideos(fanA.ID)
	likedB, _ = service.GetLikedVideos(fanB.ID)
	if len(likedA) != 0 || len(likedB) != 1 {
		t.Fatalf("expected 0 and 1 liked videos, got %d and %d", len(likedA), len(likedB))
	}
}
