package service_test

import (
	"VidTube/internal/apperr"
	"VidTube/internal/service"
	"context"
	"testing"
)

func TestToggleSubscriptionRoundTrip(t *testing.T) {
	cleanTables(t)
	channel := createTestUser(t, "channel")
	fan := createTestUser(t, "fan")
	ctx := context.Background()

	result, err := service.ToggleSubscription(ctx, channel.ID, fan.ID)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if result.Toggled != "added" {
		t.Fatalf("expected added, got %q", result.Toggled)
	}

	subs, err := service.GetSubscribers(channel.ID)
	if err != nil {
		t.Fatal(err)
	}
	if subs.SubscribersCount != 1 || subs.Subscribers[0].ID != fan.ID {
		t.Fatal("fan missing from subscriber listing")
	}

	channels, err := service.GetSubscribedChannels(fan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if channels.ChannelsCount != 1 || channels.Channels[0].ID != channel.ID {
		t.Fatal("channel missing from subscribed listing")
	}
	if channels.Channels[0].SubscribersCount != 1 {
		t.Fatalf("expected per-channel count 1, got %d", channels.Channels[0].SubscribersCount)
	}

	result, err = service.ToggleSubscription(ctx, channel.ID, fan.ID)
	if err != nil {
		t.Fatalf("unsubscribe failed: %v", err)
	}
	if result.Toggled != "removed" {
		t.Fatalf("expected removed, got %q", result.Toggled)
	}

	subs, _ = service.GetSubscribers(channel.ID)
	if subs.SubscribersCount != 0 {
		t.Fatalf("expected 0 subscribers after round trip, got %d", subs.SubscribersCount)
	}
}

func TestToggleSubscriptionSelf(t *testing.T) {
	cleanTables(t)
	user := createTestUser(t, "loner")

	_, err := service.ToggleSubscription(context.Background(), user.ID, user.ID)
	if apperr.KindOf(err) != apperr.KindInvalidInput {
		t.Fatalf("expected invalid input on self-subscription, got %v", err)
	}
}

func TestSubscriptionVideos(t *testing.T) {
	cleanTables(t)
	channel := createTestUser(t, "channel")
	other := createTestUser(t, "other")
	fan := createTestUser(t, "fan")
	ctx := context.Background()

	followed := createTestVideo(t, channel.ID, "followed")
	draft := createTestVideo(t, channel.ID, "draft")
	unpublish(t, draft.ID)
	createTestVideo(t, other.ID, "unfollowed")

	if _, err := service.ToggleSubscription(ctx, channel.ID, fan.ID); err != nil {
		t.Fatal(err)
	}

	videos, err := service.GetSubscriptionVideos(fan.ID)
	if err != nil {
		t.Fatalf("subscription feed failed: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("expected 1 feed video, got %d", len(videos))
	}
	if videos[0].ID != followed.ID {
		t.Fatalf("unexpected video %d in feed", videos[0].ID)
	}
}
