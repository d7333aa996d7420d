package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skillforge/internal/models"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.createUser(t, models.RoleAdmin)

	t.Run("valid credentials by email", func(t *testing.T) {
		body := `{"identifier":"` + user.Email + `","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		env.Auth.Login(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d (body: %s)", rr.Code, rr.Body.String())
		}
		_, _, data := decodeEnvelope(t, rr)

		var payload struct {
			Token string       `json:"token"`
			User  *models.User `json:"user"`
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Token == "" {
			t.Error("no token issued")
		}
		if payload.User == nil || payload.User.ID != user.ID {
			t.Errorf("user = %+v", payload.User)
		}
		if strings.Contains(string(data), "passwordHash") {
			t.Error("password hash leaked in login response")
		}

		claims, err := env.Signer.VerifyAccess(payload.Token)
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if claims.Role != string(models.RoleAdmin) {
			t.Errorf("token role = %q", claims.Role)
		}
	})

	t.Run("valid credentials by username", func(t *testing.T) {
		body := `{"identifier":"` + user.Username + `","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		env.Auth.Login(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status = %d", rr.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"identifier":"` + user.Email + `","password":"wrong-password"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		env.Auth.Login(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		body := `{"identifier":"nobody@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		env.Auth.Login(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
	})
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	user, accessToken := env.createUser(t, models.RoleEditor)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rr := env.serveAuthed(env.Auth.Me, req, accessToken)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	_, _, data := decodeEnvelope(t, rr)

	var payload struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.User == nil || payload.User.Email != user.Email {
		t.Errorf("user = %+v", payload.User)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.createUser(t, models.RoleAdmin)

	// Request a reset link.
	body := `{"email":"` + user.Email + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset/request", strings.NewReader(body))
	rr := httptest.NewRecorder()
	env.Auth.RequestPasswordReset(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("request status = %d", rr.Code)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(env.Sender.sentMail()) == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	sent := env.Sender.sentMail()
	if len(sent) != 1 {
		t.Fatal("no reset email sent")
	}
	if sent[0].To[0] != user.Email {
		t.Errorf("reset sent to %v", sent[0].To)
	}

	// Complete the reset with a fresh token and sign in with the new
	// password.
	resetToken, err := env.Signer.IssueReset(user.ID)
	if err != nil {
		t.Fatalf("issue reset: %v", err)
	}
	body = `{"token":"` + resetToken + `","password":"brand-new-pass"}`
	req = httptest.NewRequest(http.MethodPost, "/api/auth/reset/confirm", strings.NewReader(body))
	rr = httptest.NewRecorder()
	env.Auth.ResetPassword(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("confirm status = %d (body: %s)", rr.Code, rr.Body.String())
	}

	body = `{"identifier":"` + user.Email + `","password":"brand-new-pass"}`
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rr = httptest.NewRecorder()
	env.Auth.Login(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("login with new password: status = %d", rr.Code)
	}
}

func TestPasswordResetUnknownEmailSameResponse(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset/request", strings.NewReader(`{"email":"ghost@example.com"}`))
	rr := httptest.NewRecorder()
	env.Auth.RequestPasswordReset(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 even for unknown accounts", rr.Code)
	}
	time.Sleep(100 * time.Millisecond)
	if got := len(env.Sender.sentMail()); got != 0 {
		t.Errorf("sent %d emails for unknown account", got)
	}
}

func TestPasswordResetRejectsAccessToken(t *testing.T) {
	env := newTestEnv(t)
	_, accessToken := env.createUser(t, models.RoleAdmin)

	body := `{"token":"` + accessToken + `","password":"brand-new-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset/confirm", strings.NewReader(body))
	rr := httptest.NewRecorder()
	env.Auth.ResetPassword(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for access-scoped token", rr.Code)
	}
}
