package service_test

import (
	"VidTube/internal/apperr"
	"VidTube/internal/repo"
	"VidTube/internal/service"
	"VidTube/model"
	"context"
	"testing"
	"time"
)

func TestChannelProfileTotals(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "channel")
	viewer := createTestUser(t, "viewer")

	v1 := createTestVideo(t, owner.ID, "one")
	v2 := createTestVideo(t, owner.ID, "two")
	hidden := createTestVideo(t, owner.ID, "draft")
	unpublish(t, hidden.ID)

	ctx := context.Background()
	// 2 + 3 + 1 fetches; the draft still counts toward total views.
	for i := 0; i < 2; i++ {
		mustFetch(t, v1.ID)
	}
	for i := 0; i < 3; i++ {
		mustFetch(t, v2.ID)
	}
	mustFetch(t, hidden.ID)

	if _, err := service.ToggleSubscription(ctx, owner.ID, viewer.ID); err != nil {
		t.Fatal(err)
	}

	profile, err := service.GetUserChannelProfile(ctx, owner.ID, viewer.ID)
	if err != nil {
		t.Fatalf("channel profile failed: %v", err)
	}
	if profile.TotalVideos != 3 {
		t.Fatalf("expected 3 total videos, got %d", profile.TotalVideos)
	}
	if profile.TotalViews != 6 {
		t.Fatalf("expected 6 total views, got %d", profile.TotalViews)
	}
	if len(profile.Videos) != 2 {
		t.Fatalf("expected 2 published videos in profile, got %d", len(profile.Videos))
	}
	if profile.SubscribersCount != 1 {
		t.Fatalf("expected 1 subscriber, got %d", profile.SubscribersCount)
	}
	if !profile.IsSubscribed {
		t.Fatal("viewer should be marked subscribed")
	}

	anonymous, err := service.GetUserChannelProfile(ctx, owner.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if anonymous.IsSubscribed {
		t.Fatal("anonymous viewer must not be marked subscribed")
	}
}

func TestChannelProfileNotFound(t *testing.T) {
	cleanTables(t)
	_, err := service.GetUserChannelProfile(context.Background(), 999, 0)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestWatchHistoryDistinctAndOrdered(t *testing.T) {
	cleanTables(t)
	owner := createTestUser(t, "channel")
	viewer := createTestUser(t, "viewer")

	base := time.Now().Add(-time.Hour)
	older := createTestVideoAt(t, owner.ID, "older", base)
	newer := createTestVideoAt(t, owner.ID, "newer", base.Add(30*time.Minute))

	// Watch the older video twice around the newer one; history reports each
	// video once, ordered by the video's upload time, newest first.
	mustFetchAs(t, older.ID, viewer.ID)
	mustFetchAs(t, newer.ID, viewer.ID)
	mustFetchAs(t, older.ID, viewer.ID)

	history, err := service.GetWatchHistory(viewer.ID)
	if err != nil {
		t.Fatalf("watch history failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].ID != newer.ID || history[1].ID != older.ID {
		t.Fatalf("unexpected history order: %d, %d", history[0].ID, history[1].ID)
	}
}

func mustFetch(t *testing.T, videoID uint64) {
	t.Helper()
	mustFetchAs(t, videoID, 0)
}

func mustFetchAs(t *testing.T, videoID, viewerID uint64) {
	t.Helper()
	if _, err := service.GetVideoById(context.Background(), videoID, viewerID); err != nil {
		t.Fatalf("fetch video %d failed: %v", videoID, err)
	}
}

func unpublish(t *testing.T, videoID uint64) {
	t.Helper()
	if err := repo.Db.Model(&model.Video{}).
		Where("id = ?", videoID).
		Update("is_published", false).Error; err != nil {
		t.Fatal(err)
	}
}
