package utils

import (
	"VidTube/config"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	config.InitConfig()
	os.Exit(m.Run())
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserId != 42 || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(42, "alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	claims, err := VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserId != 42 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

// The two token kinds are signed with different secrets, so one must never
// verify as the other.
func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	access, err := GenerateToken(1, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := VerifyRefreshToken(access); err == nil {
		t.Fatal("access token accepted as refresh token")
	}

	refresh, err := GenerateRefreshToken(1, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := VerifyToken(refresh); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	if _, err := VerifyToken("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
