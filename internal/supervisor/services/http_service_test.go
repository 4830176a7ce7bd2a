// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockServer simulates *http.Server lifecycle for service tests.
type mockServer struct {
	listenErr    error
	shutdownErr  error
	shutdownDone chan struct{}
	stopped      chan struct{}
}

func newMockServer() *mockServer {
	return &mockServer{
		shutdownDone: make(chan struct{}),
		stopped:      make(chan struct{}),
	}
}

func (m *mockServer) ListenAndServe() error {
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.stopped
	return nil
}

func (m *mockServer) Shutdown(_ context.Context) error {
	close(m.shutdownDone)
	close(m.stopped)
	return m.shutdownErr
}

func TestServeReturnsStartupError(t *testing.T) {
	server := newMockServer()
	server.listenErr = errors.New("address in use")

	svc := NewHTTPServerService(server, time.Second)
	err := svc.Serve(t.Context())

	if err == nil || !errors.Is(err, server.listenErr) {
		t.Fatalf("Serve() = %v, want wrapped startup error", err)
	}
}

func TestServeGracefulShutdownOnCancel(t *testing.T) {
	server := newMockServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	select {
	case <-server.shutdownDone:
	default:
		t.Error("Shutdown was not called")
	}
}

func TestServeReportsShutdownFailure(t *testing.T) {
	server := newMockServer()
	server.shutdownErr = errors.New("connections stuck")
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if err == nil || !errors.Is(err, server.shutdownErr) {
			t.Errorf("Serve() = %v, want shutdown error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestStringNamesService(t *testing.T) {
	svc := NewHTTPServerService(newMockServer(), 0)
	if svc.String() != "http-server" {
		t.Errorf("String() = %q", svc.String())
	}
}
