package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"frecha-bot/models"
)

// topMessageLimit caps the ranking in the daily summary.
const topMessageLimit = 5

// GetDailyStats aggregates the conversation log for one calendar day:
// per-language turn counts, the most frequent inbound messages and the
// number of leads captured that day.
func GetDailyStats(ctx context.Context, day time.Time) (*models.DailyStats, error) {
	collection := database.Collection("conversations")

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	window := bson.M{"timestamp": bson.M{"$gte": dayStart, "$lt": dayEnd}}

	stats := &models.DailyStats{
		Date:        dayStart.Format("2006-01-02"),
		TurnsByLang: map[string]int64{},
	}

	// Per-language turn counts
	langPipeline := []bson.M{
		{"$match": window},
		{"$group": bson.M{
			"_id":   "$language",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := collection.Aggregate(ctx, langPipeline)
	if err != nil {
		return nil, err
	}

	var langCounts []struct {
		Language string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &langCounts); err != nil {
		return nil, err
	}

	for _, lc := range langCounts {
		stats.TurnsByLang[lc.Language] = lc.Count
		stats.TotalTurns += lc.Count
	}

	// Most frequent inbound messages
	topPipeline := []bson.M{
		{"$match": window},
		{"$group": bson.M{
			"_id":   "$user_message",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": topMessageLimit},
	}

	cursor, err = collection.Aggregate(ctx, topPipeline)
	if err != nil {
		return nil, err
	}

	topMessages := []models.MessageCount{}
	if err := cursor.All(ctx, &topMessages); err != nil {
		return nil, err
	}
	stats.TopMessages = topMessages

	newLeads, err := CountLeadsBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	stats.NewLeads = newLeads

	return stats, nil
}
