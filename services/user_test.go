package services

import (
	"context"
	"testing"

	"frecha-bot/models"
)

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	if _, err := CreateUser(context.Background(), "eve", "eve@example.com", "Eve", "secret", models.UserRole("superuser")); err == nil {
		t.Error("Expected error for unknown role")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPasswordHash("hunter2", hash) {
		t.Error("Expected hash to verify against the original password")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("Expected hash to reject a wrong password")
	}
}
