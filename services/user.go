package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"frecha-bot/models"
)

// CreateUser creates a new dashboard user with a hashed password
func CreateUser(ctx context.Context, username, email, fullName, password string, role models.UserRole) (*models.User, error) {
	if !models.IsValidRole(string(role)) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	collection := database.Collection("users")

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Role:         role,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := collection.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email address
func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	collection := database.Collection("users")

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateLastLogin records a successful login
func UpdateLastLogin(ctx context.Context, userID primitive.ObjectID) error {
	collection := database.Collection("users")

	_, err := collection.UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"last_login": time.Now(), "updated_at": time.Now()}},
	)
	return err
}

// EnsureAdminUser seeds the admin account on first start when no user
// exists yet for the configured admin email.
func EnsureAdminUser(ctx context.Context, email, password string) error {
	if password == "" {
		slog.Info("ADMIN_PASSWORD not set, skipping admin user seeding")
		return nil
	}

	existing, err := GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if _, err := CreateUser(ctx, "admin", email, "Administrator", password, models.RoleAdmin); err != nil {
		return err
	}

	slog.Info("Seeded admin user", "email", email)
	return nil
}

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password against a bcrypt hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
