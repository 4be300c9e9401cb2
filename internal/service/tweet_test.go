package service_test

import (
	"VidTube/internal/apperr"
	"VidTube/internal/service"
	"context"
	"testing"
)

func TestCreateTweetValidation(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "tweeter")

	if _, err := service.CreateTweet(context.Background(), owner.ID, "   ", nil); apperr.KindOf(err) != apperr.KindInvalidInput {
		t.Fatalf("expected invalid input on blank content, got %v", err)
	}

	tweet, err := service.CreateTweet(context.Background(), owner.ID, "hello", nil)
	if err != nil {
		t.Fatalf("create tweet failed: %v", err)
	}
	if tweet.ImageURL != "" {
		t.Fatalf("expected no image, got %q", tweet.ImageURL)
	}
}

func TestCreateTweetWithImage(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "tweeter")

	image := makeFileHeader(t, "image", "pic.png", "fake image")
	tweet, err := service.CreateTweet(context.Background(), owner.ID, "with picture", image)
	if err != nil {
		t.Fatalf("create tweet failed: %v", err)
	}
	if tweet.ImageObject == "" || !testStore.has(tweet.ImageObject) {
		t.Fatal("tweet image missing from the media store")
	}

	// Deleting the tweet removes the image object too.
	if err := service.DeleteTweet(context.Background(), tweet.ID, owner.ID); err != nil {
		t.Fatalf("delete tweet failed: %v", err)
	}
	if testStore.has(tweet.ImageObject) {
		t.Fatal("tweet image survived the delete")
	}
}

func TestTweetFeedState(t *testing.T) {
	cleanTables(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	ctx := context.Background()

	first := createTestTweet(t, alice.ID, "first")
	second := createTestTweet(t, bob.ID, "second")

	if _, err := service.ToggleTweetLike(ctx, first.ID, bob.ID); err != nil {
		t.Fatal(err)
	}

	feed, err := service.GetAllTweets(bob.ID)
	if err != nil {
		t.Fatalf("tweet feed failed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(feed))
	}
	// Newest first.
	if feed[0].ID != second.ID {
		t.Fatalf("expected newest tweet first, got %d", feed[0].ID)
	}
	if feed[1].LikesCount != 1 || !feed[1].HasLiked {
		t.Fatalf("liker view wrong: count=%d hasLiked=%v", feed[1].LikesCount, feed[1].HasLiked)
	}

	onlyAlice, err := service.GetUserTweets(alice.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(onlyAlice) != 1 || onlyAlice[0].ID != first.ID {
		t.Fatal("user tweets listing wrong")
	}
	if onlyAlice[0].HasLiked {
		t.Fatal("anonymous viewer must not be marked as liker")
	}
}

func TestUpdateTweetOwnerOnly(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "tweeter")
	stranger := createTestUser(t, "stranger")
	tweet := createTestTweet(t, owner.ID, "original")

	if _, err := service.UpdateTweet(tweet.ID, stranger.ID, "hijacked"); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	updated, err := service.UpdateTweet(tweet.ID, owner.ID, "edited")
	if err != nil {
		t.Fatalf("owner edit failed: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("expected edited content, got %q", updated.Content)
	}

	if err := service.DeleteTweet(context.Background(), tweet.ID, stranger.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden delete, got %v", err)
	}
}
