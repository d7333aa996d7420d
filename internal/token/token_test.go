package token

import (
	"testing"

	"github.com/google/uuid"

	"skillforge/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:   uuid.New(),
		Role: models.RoleAdmin,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	signer := NewSigner("test-secret")
	user := testUser()

	raw, err := signer.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	claims, err := signer.VerifyAccess(raw)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if claims.Role != string(models.RoleAdmin) {
		t.Errorf("role = %q, want %q", claims.Role, models.RoleAdmin)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("user id: %v", err)
	}
	if id != user.ID {
		t.Errorf("user id = %s, want %s", id, user.ID)
	}
}

func TestResetTokenNotValidForAccess(t *testing.T) {
	signer := NewSigner("test-secret")

	raw, err := signer.IssueReset(uuid.New())
	if err != nil {
		t.Fatalf("issue reset: %v", err)
	}

	if _, err := signer.VerifyAccess(raw); err == nil {
		t.Error("reset token accepted as access token")
	}
	if _, err := signer.VerifyReset(raw); err != nil {
		t.Errorf("verify reset: %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	raw, err := NewSigner("secret-a").IssueAccess(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewSigner("secret-b").VerifyAccess(raw); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestGarbageRejected(t *testing.T) {
	signer := NewSigner("test-secret")
	for _, raw := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := signer.VerifyAccess(raw); err == nil {
			t.Errorf("VerifyAccess(%q) accepted garbage", raw)
		}
	}
}
