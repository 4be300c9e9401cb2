package utils

import "testing"

func TestRateLimiterBurstThenDeny(t *testing.T) {
	limiter := newIPRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !limiter.allow("10.0.0.1") {
			t.Fatalf("request %d inside the burst was denied", i)
		}
	}
	if limiter.allow("10.0.0.1") {
		t.Fatal("request past the burst was allowed")
	}

	// Other clients are unaffected.
	if !limiter.allow("10.0.0.2") {
		t.Fatal("fresh client was denied")
	}
}
