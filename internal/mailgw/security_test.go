package mailgw

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: "topsecret", RateLimitPerMin: 60})
	payload := []byte(`{"from_email":"a@b.c"}`)

	t.Run("valid signature", func(t *testing.T) {
		if err := v.ValidateSignature(payload, sign("topsecret", payload)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		if err := v.ValidateSignature(payload, sign("wrong", payload)); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		sig := sign("topsecret", payload)
		if err := v.ValidateSignature([]byte(`{"from_email":"evil@b.c"}`), sig); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("bad format", func(t *testing.T) {
		if err := v.ValidateSignature(payload, "md5=abc"); err == nil {
			t.Error("expected format error")
		}
		if err := v.ValidateSignature(payload, "sha256=zzzz"); err == nil {
			t.Error("expected hex error")
		}
	})

	t.Run("no secret configured", func(t *testing.T) {
		empty := NewSecurityValidator(SecurityConfig{})
		if err := empty.ValidateSignature(payload, sign("", payload)); err == nil {
			t.Error("expected error when secret missing")
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{
		AllowedIPs:      []string{"10.1.2.3", "192.168.0.0/16"},
		RateLimitPerMin: 60,
	})

	cases := []struct {
		name   string
		remote string
		xff    string
		wantOK bool
	}{
		{"exact match", "10.1.2.3:1234", "", true},
		{"cidr match", "192.168.5.9:1234", "", true},
		{"not whitelisted", "8.8.8.8:1234", "", false},
		{"xff wins", "8.8.8.8:1234", "10.1.2.3", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/webhook/inbound-mail", nil)
			r.RemoteAddr = tc.remote
			if tc.xff != "" {
				r.Header.Set("X-Forwarded-For", tc.xff)
			}
			err := v.ValidateIPAddress(r)
			if tc.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Error("expected rejection")
			}
		})
	}

	t.Run("no restriction", func(t *testing.T) {
		open := NewSecurityValidator(SecurityConfig{})
		r := httptest.NewRequest("POST", "/webhook/inbound-mail", nil)
		r.RemoteAddr = "8.8.8.8:1234"
		if err := open.ValidateIPAddress(r); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCheckRateLimit(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: "s", RateLimitPerMin: 10})

	// Burst is requestsPerMin/10 = 1, so the second immediate call trips.
	if err := v.CheckRateLimit("sender@example.com"); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	if err := v.CheckRateLimit("sender@example.com"); err == nil {
		t.Error("expected rate limit on burst")
	}

	// Different sender has its own bucket.
	if err := v.CheckRateLimit("other@example.com"); err != nil {
		t.Errorf("independent sender should pass: %v", err)
	}
}
