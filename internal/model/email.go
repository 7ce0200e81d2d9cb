package model

import "time"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

type Category string

const (
	CategorySupport   Category = "support"
	CategoryBilling   Category = "billing"
	CategoryTechnical Category = "technical"
	CategoryGeneral   Category = "general"
)

func (c Category) IsValid() bool {
	switch c {
	case CategorySupport, CategoryBilling, CategoryTechnical, CategoryGeneral:
		return true
	}
	return false
}

type Status string

const (
	StatusUnread   Status = "unread"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusUnread, StatusRead, StatusReplied, StatusArchived:
		return true
	}
	return false
}

// Email is an inbound support email as shown on the dashboard.
type Email struct {
	ID          string
	Subject     string
	SenderName  string
	SenderEmail string
	Content     string
	ReceivedAt  time.Time
	Sentiment   Sentiment
	Urgency     Urgency
	Category    Category
	Status      Status
	Contacts    []string
	Requests    []string
	AIDraft     string
}

type EmailStats struct {
	Total              int
	Unread             int
	Replied            int
	SentimentBreakdown map[Sentiment]int
	UrgencyBreakdown   map[Urgency]int
}
