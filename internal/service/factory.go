package service

import (
	"time"

	"github.com/Akhil-Baki/empathetic-email-helper/common/llm"
	"github.com/Akhil-Baki/empathetic-email-helper/common/metrics"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/store"
)

type ServicesConfig struct {
	Stores       *store.Stores
	LLMClient    llm.Client
	ReplyTimeout time.Duration
	Metrics      *metrics.ReplyMetrics
}

type Services struct {
	reply  ReplyService
	emails EmailService
}

// NewServices builds every service once; they hold no per-request state and are
// shared by all handlers.
func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		reply:  NewReplyService(cfg.LLMClient, cfg.ReplyTimeout, cfg.Metrics),
		emails: NewEmailService(cfg.Stores.Emails()),
	}
}

func (s *Services) Reply() ReplyService {
	return s.reply
}

func (s *Services) Emails() EmailService {
	return s.emails
}
