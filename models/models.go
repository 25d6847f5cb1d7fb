package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation represents one logged chat exchange
type Conversation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID   string             `bson:"session_id,omitempty" json:"session_id,omitempty"`
	UserMessage string             `bson:"user_message" json:"user_message"`
	BotResponse string             `bson:"bot_response" json:"bot_response"`
	Language    string             `bson:"language" json:"language"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// LeadStatus tracks a lead through the sales follow-up pipeline
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// IsValidLeadStatus checks if a status is one of the known pipeline states
func IsValidLeadStatus(status string) bool {
	switch LeadStatus(status) {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// Lead represents a captured sales lead
type Lead struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	CurrentProvider string             `bson:"current_provider,omitempty" json:"current_provider,omitempty"`
	Needs           string             `bson:"needs,omitempty" json:"needs,omitempty"`
	Contact         string             `bson:"contact" json:"contact"`
	Language        string             `bson:"language" json:"language"`
	Status          LeadStatus         `bson:"status" json:"status"`
	Timestamp       time.Time          `bson:"timestamp" json:"timestamp"`
}

// MessageCount is one entry of the daily top-messages ranking
type MessageCount struct {
	Message string `bson:"_id" json:"message"`
	Count   int64  `bson:"count" json:"count"`
}

// DailyStats is the aggregated snapshot the daily summary report is built from
type DailyStats struct {
	Date        string           `json:"date"`
	TotalTurns  int64            `json:"total_turns"`
	TurnsByLang map[string]int64 `json:"turns_by_language"`
	TopMessages []MessageCount   `json:"top_messages"`
	NewLeads    int64            `json:"new_leads"`
}
