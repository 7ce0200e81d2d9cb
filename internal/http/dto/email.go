package dto

import (
	"time"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/model"
)

type EmailResponse struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	SenderName  string    `json:"sender_name"`
	SenderEmail string    `json:"sender_email"`
	Content     string    `json:"content"`
	ReceivedAt  time.Time `json:"received_at"`
	Sentiment   string    `json:"sentiment"`
	Urgency     string    `json:"urgency"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Contacts    []string  `json:"contacts"`
	Requests    []string  `json:"requests"`
	AIDraft     string    `json:"ai_draft"`
}

func ToEmailResponse(e *model.Email) *EmailResponse {
	contacts := e.Contacts
	if contacts == nil {
		contacts = []string{}
	}
	requests := e.Requests
	if requests == nil {
		requests = []string{}
	}

	return &EmailResponse{
		ID:          e.ID,
		Subject:     e.Subject,
		SenderName:  e.SenderName,
		SenderEmail: e.SenderEmail,
		Content:     e.Content,
		ReceivedAt:  e.ReceivedAt,
		Sentiment:   string(e.Sentiment),
		Urgency:     string(e.Urgency),
		Category:    string(e.Category),
		Status:      string(e.Status),
		Contacts:    contacts,
		Requests:    requests,
		AIDraft:     e.AIDraft,
	}
}

type ListEmailsResponse struct {
	Emails []*EmailResponse `json:"emails"`
}

func ToListEmailsResponse(emails []model.Email) *ListEmailsResponse {
	resp := &ListEmailsResponse{Emails: make([]*EmailResponse, 0, len(emails))}
	for i := range emails {
		resp.Emails = append(resp.Emails, ToEmailResponse(&emails[i]))
	}
	return resp
}

type EmailStatsResponse struct {
	Total              int            `json:"total"`
	Unread             int            `json:"unread"`
	Replied            int            `json:"replied"`
	SentimentBreakdown map[string]int `json:"sentiment_breakdown"`
	UrgencyBreakdown   map[string]int `json:"urgency_breakdown"`
}

func ToEmailStatsResponse(s *model.EmailStats) *EmailStatsResponse {
	resp := &EmailStatsResponse{
		Total:              s.Total,
		Unread:             s.Unread,
		Replied:            s.Replied,
		SentimentBreakdown: make(map[string]int, len(s.SentimentBreakdown)),
		UrgencyBreakdown:   make(map[string]int, len(s.UrgencyBreakdown)),
	}
	for k, v := range s.SentimentBreakdown {
		resp.SentimentBreakdown[string(k)] = v
	}
	for k, v := range s.UrgencyBreakdown {
		resp.UrgencyBreakdown[string(k)] = v
	}
	return resp
}
