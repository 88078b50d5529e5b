package helper

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "access-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	sub := TokenSubject{ID: uuid.New(), Email: "ola@example.com", Role: "student", FirstName: "Ola", LastName: "Nowak"}
	raw, exp, err := IssueAccessToken(sub, testSecret, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(exp) < 59*time.Minute {
		t.Fatalf("exp too early: %v", exp)
	}

	id, claims, err := ParseAccessToken(raw, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != sub.ID || claims["role"] != "student" || claims["email"] != "ola@example.com" {
		t.Fatalf("claims mismatch: id=%s claims=%v", id, claims)
	}
}

func TestAccessTokenRejections(t *testing.T) {
	sub := TokenSubject{ID: uuid.New(), Role: "admin"}

	expired, _, _ := IssueAccessToken(sub, testSecret, time.Minute, time.Now().Add(-2*time.Hour))
	if _, _, err := ParseAccessToken(expired, testSecret); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expired token err = %v", err)
	}

	good, _, _ := IssueAccessToken(sub, testSecret, time.Hour, time.Now())
	if _, _, err := ParseAccessToken(good, "other-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("wrong secret err = %v", err)
	}

	refresh, _, _ := IssueRefreshToken(sub.ID, testSecret, time.Hour, time.Now())
	if _, _, err := ParseAccessToken(refresh, testSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh used as access err = %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	uid := uuid.New()
	now := time.Now()
	a, _, err := IssueRefreshToken(uid, "refresh-secret", time.Hour, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	b, _, _ := IssueRefreshToken(uid, "refresh-secret", time.Hour, now)
	if a == b {
		t.Fatal("refresh tokens issued together must differ")
	}

	got, err := ParseRefreshToken(a, "refresh-secret")
	if err != nil || got != uid {
		t.Fatalf("ParseRefreshToken = %s, %v", got, err)
	}

	access, _, _ := IssueAccessToken(TokenSubject{ID: uid}, "refresh-secret", time.Hour, now)
	if _, err := ParseRefreshToken(access, "refresh-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("access used as refresh err = %v", err)
	}
}

func TestRefreshHashIsKeyed(t *testing.T) {
	h1 := RefreshHash("tok", "k1")
	h2 := RefreshHash("tok", "k2")
	if bytes.Equal(h1, h2) || len(h1) != 32 {
		t.Fatalf("unexpected hashes %x %x", h1, h2)
	}
	if !bytes.Equal(h1, RefreshHash("tok", "k1")) {
		t.Fatal("hash must be deterministic")
	}
}
