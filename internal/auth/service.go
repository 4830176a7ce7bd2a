// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// Demo credentials accepted by the login endpoint. Real farmer accounts
// live in Mongo; the demo account exists so the frontend can be exercised
// without registration.
const (
	demoEmail    = "demo@farmer.com"
	demoPassword = "password123"
	demoUserID   = "demo-farmer-001"
	demoRole     = "farmer"
)

// ErrInvalidCredentials is returned when the email/password pair does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service handles login and token issuance.
type Service struct {
	jwt *JWTManager
}

// NewService creates an auth service backed by the given JWT manager.
func NewService(jwt *JWTManager) *Service {
	return &Service{jwt: jwt}
}

// Login verifies credentials and issues a JWT on success.
// Credential comparison is constant-time to avoid timing side channels.
func (s *Service) Login(email, password string) (*models.AuthResponse, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(demoEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(demoPassword)) == 1
	if !emailOK || !passOK {
		logging.Warn().Str("email", email).Msg("Login attempt with invalid credentials")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateToken(demoUserID, demoEmail, demoRole)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      demoUserID,
		Email:       demoEmail,
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		ExpiresAt:   expiresAt,
	}, nil
}

// Validate parses and validates a bearer token, returning its claims.
func (s *Service) Validate(token string) (*Claims, error) {
	return s.jwt.ValidateToken(token)
}
