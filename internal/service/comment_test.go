package service_test

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"context"
	"fmt"
	"testing"
)

func TestListVideoComments(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "uploader")
	commenter := createTestUser(t, "commenter")
	video := createTestVideo(t, owner.ID, "discussed")

	for i := 0; i < 10; i++ {
		if _, err := service.AddVideoComment(video.ID, commenter.ID, fmt.Sprintf("comment %d", i)); err != nil {
			t.Fatalf("add comment %d failed: %v", i, err)
		}
	}

	resp, err := service.ListVideoComments(video.ID, 0, &dto.CommentListRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list comments failed: %v", err)
	}
	if resp.TotalComments != 10 {
		t.Fatalf("expected 10 comments, got %d", resp.TotalComments)
	}
	if resp.TotalPages != 1 {
		t.Fatalf("expected 1 total page, got %d", resp.TotalPages)
	}
	if len(resp.Comments) != 10 {
		t.Fatalf("expected full page, got %d", len(resp.Comments))
	}
	// Newest first.
	if resp.Comments[0].Content != "comment 9" {
		t.Fatalf("expected newest comment first, got %q", resp.Comments[0].Content)
	}
	if resp.Comments[0].Owner.Username != "commenter" {
		t.Fatalf("expected owner summary, got %q", resp.Comments[0].Owner.Username)
	}
}

func TestCommentLikeState(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "uploader")
	fan := createTestUser(t, "fan")
	video := createTestVideo(t, owner.ID, "discussed")
	ctx := context.Background()

	comment, err := service.AddVideoComment(video.ID, owner.ID, "like me")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := service.ToggleCommentLike(ctx, comment.ID, fan.ID); err != nil {
		t.Fatal(err)
	}

	asFan, err := service.ListVideoComments(video.ID, fan.ID, &dto.CommentListRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if asFan.Comments[0].LikesCount != 1 || !asFan.Comments[0].HasLiked {
		t.Fatalf("fan view wrong: count=%d hasLiked=%v",
			asFan.Comments[0].LikesCount, asFan.Comments[0].HasLiked)
	}

	asAnon, err := service.ListVideoComments(video.ID, 0, &dto.CommentListRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if asAnon.Comments[0].LikesCount != 1 || asAnon.Comments[0].HasLiked {
		t.Fatalf("anonymous view wrong: count=%d hasLiked=%v",
			asAnon.Comments[0].LikesCount, asAnon.Comments[0].HasLiked)
	}
}

func TestUpdateCommentOwnerOnly(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "uploader")
	stranger := createTestUser(t, "stranger")
	video := createTestVideo(t, owner.ID, "discussed")

	comment, err := service.AddVideoComment(video.ID, owner.ID, "original")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := service.UpdateComment(comment.ID, stranger.ID, "hijacked"); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	updated, err := service.UpdateComment(comment.ID, owner.ID, "edited")
	if err != nil {
		t.Fatalf("owner edit failed: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("expected edited content, got %q", updated.Content)
	}

	if err := service.DeleteComment(comment.ID, stranger.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden delete, got %v", err)
	}
	if err := service.DeleteComment(comment.ID, owner.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := service.DeleteComment(comment.ID, owner.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestTweetComments(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "tweeter")
	reply := createTestUser(t, "replier")
	tweet := createTestTweet(t, owner.ID, "discuss this")

	if _, err := service.AddTweetComment(tweet.ID, reply.ID, "replying"); err != nil {
		t.Fatalf("add tweet comment failed: %v", err)
	}

	comments, err := service.ListTweetComments(tweet.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 1 || comments[0].Content != "replying" {
		t.Fatal("tweet comment missing from listing")
	}
	if comments[0].TweetID == nil || *comments[0].TweetID != tweet.ID {
		t.Fatal("comment not linked to the tweet")
	}

	tweets, err := service.GetUserTweets(owner.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tweets[0].CommentsCount != 1 {
		t.Fatalf("expected tweet comments count 1, got %d", tweets[0].CommentsCount)
	}
}
