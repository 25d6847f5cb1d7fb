package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"frecha-bot/bot"
	"frecha-bot/models"
)

// SaveLead persists a new lead with status "new"
func SaveLead(ctx context.Context, lead *models.Lead) error {
	collection := database.Collection("leads")

	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if lead.Timestamp.IsZero() {
		lead.Timestamp = time.Now()
	}

	_, err := collection.InsertOne(ctx, lead)
	if err != nil {
		slog.Error("Failed to save lead", "error", err, "name", lead.Name)
		return err
	}

	slog.Info("New lead saved", "name", lead.Name, "contact", lead.Contact, "language", lead.Language)
	return nil
}

// GetLeads retrieves leads, newest first, with optional status filter
// and pagination
func GetLeads(ctx context.Context, status string, limit, skip int) ([]models.Lead, int64, error) {
	collection := database.Collection("leads")

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
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

	leads := []models.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, 0, err
	}

	return leads, totalCount, nil
}

// UpdateLeadStatus moves a lead to another pipeline state
func UpdateLeadStatus(ctx context.Context, leadID string, status models.LeadStatus) error {
	collection := database.Collection("leads")

	objectID, err := primitive.ObjectIDFromHex(leadID)
	if err != nil {
		return err
	}

	result, err := collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	slog.Info("Lead status updated", "leadID", leadID, "status", status)
	return nil
}

// CountLeadsBetween counts leads captured inside a time window
func CountLeadsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	collection := database.Collection("leads")

	return collection.CountDocuments(ctx, bson.M{
		"timestamp": bson.M{"$gte": from, "$lt": to},
	})
}

// LeadStore adapts the leads collection to the engine's LeadStore
// contract.
type LeadStore struct{}

func (LeadStore) RecordLead(ctx context.Context, payload bot.LeadPayload, lang bot.Language) error {
	return SaveLead(ctx, &models.Lead{
		Name:            payload.Name,
		Location:        payload.Location,
		CurrentProvider: payload.Provider,
		Needs:           payload.Needs,
		Contact:         payload.Contact,
		Language:        string(lang),
	})
}
