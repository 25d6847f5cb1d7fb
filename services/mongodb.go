package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"frecha-bot/models"
)

var (
	mongoClient *mongo.Client
	database    *mongo.Database
)

// GetDatabase returns the MongoDB database instance
func GetDatabase() *mongo.Database {
	return database
}

// InitMongoDB initializes MongoDB connection
func InitMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	slog.Info("Connected to MongoDB")
	mongoClient = client

	return client, nil
}

// InitServices initializes all services
func InitServices(client *mongo.Client, databaseName string) {
	database = client.Database(databaseName)

	// Create indexes
	createIndexes()
}

// createIndexes creates necessary database indexes
func createIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conversationsCollection := database.Collection("conversations")
	conversationsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"session_id": 1}},
		{Keys: bson.M{"language": 1}},
		{Keys: bson.M{"timestamp": -1}},
	})

	leadsCollection := database.Collection("leads")
	leadsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"status": 1}},
		{Keys: bson.M{"timestamp": -1}},
	})

	usersCollection := database.Collection("users")
	usersCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})

	sessionsCollection := database.Collection("sessions")
	sessionsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"session_id": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"expires_at": 1}},
		{Keys: bson.M{"is_active": 1, "expires_at": 1}},
	})
}

// SaveConversation logs one chat exchange to the conversations collection
func SaveConversation(ctx context.Context, conversation *models.Conversation) error {
	collection := database.Collection("conversations")
	_, err := collection.InsertOne(ctx, conversation)
	return err
}

// GetConversations retrieves logged conversations, newest first, with
// optional language filter and pagination
func GetConversations(ctx context.Context, language string, limit, skip int) ([]models.Conversation, int64, error) {
	collection := database.Collection("conversations")

	filter := bson.M{}
	if language != "" {
		filter["language"] = language
	}

	totalCount, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	conversations := []models.Conversation{}
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, 0, err
	}

	return conversations, totalCount, nil
}

// GetSessionConversation retrieves all exchanges of one chat session in order
func GetSessionConversation(ctx context.Context, sessionID string) ([]models.Conversation, error) {
	collection := database.Collection("conversations")

	findOptions := options.Find().SetSort(bson.M{"timestamp": 1})

	cursor, err := collection.Find(ctx, bson.M{"session_id": sessionID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	conversations := []models.Conversation{}
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}

	return conversations, nil
}
