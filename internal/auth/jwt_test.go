// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
)

func testSecurityConfig(timeout time.Duration) *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret:      "test-secret-at-least-32-characters-long",
		SessionTimeout: timeout,
	}
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	_, err := NewJWTManager(&config.SecurityConfig{SessionTimeout: time.Hour})
	if err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m, err := NewJWTManager(testSecurityConfig(time.Hour))
	if err != nil {
		t.Fatalf("NewJWTManager failed: %v", err)
	}

	token, expiresAt, err := m.GenerateToken("demo-farmer-001", "demo@farmer.com", "farmer")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if until := time.Until(expiresAt); until < 59*time.Minute || until > time.Hour {
		t.Errorf("unexpected expiry %v", expiresAt)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != "demo-farmer-001" || claims.Email != "demo@farmer.com" || claims.Role != "farmer" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m, err := NewJWTManager(testSecurityConfig(-time.Minute))
	if err != nil {
		t.Fatalf("NewJWTManager failed: %v", err)
	}

	token, _, err := m.GenerateToken("u", "e@example.com", "farmer")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig(time.Hour))
	token, _, _ := m.GenerateToken("u", "e@example.com", "farmer")

	tampered := token[:len(token)-2] + "xx"
	if _, err := m.ValidateToken(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	m1, _ := NewJWTManager(testSecurityConfig(time.Hour))
	m2, _ := NewJWTManager(&config.SecurityConfig{
		JWTSecret:      strings.Repeat("other", 8),
		SessionTimeout: time.Hour,
	})

	token, _, _ := m1.GenerateToken("u", "e@example.com", "farmer")
	if _, err := m2.ValidateToken(token); err == nil {
		t.Fatal("expected token signed with different secret to be rejected")
	}
}

func TestLoginDemoCredentials(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig(time.Hour))
	svc := NewService(m)

	resp, err := svc.Login("demo@farmer.com", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("unexpected token type %q", resp.TokenType)
	}
	if resp.UserID != "demo-farmer-001" {
		t.Errorf("unexpected user id %q", resp.UserID)
	}

	claims, err := svc.Validate(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Email != "demo@farmer.com" {
		t.Errorf("unexpected email claim %q", claims.Email)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig(time.Hour))
	svc := NewService(m)

	cases := []struct{ email, password string }{
		{"demo@farmer.com", "wrong"},
		{"other@farmer.com", "password123"},
		{"", ""},
	}
	for _, c := range cases {
		if _, err := svc.Login(c.email, c.password); err != ErrInvalidCredentials {
			t.Errorf("Login(%q, %q) = %v, want ErrInvalidCredentials", c.email, c.password, err)
		}
	}
}
