package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Akhil-Baki/empathetic-email-helper/common/llm"
	"github.com/Akhil-Baki/empathetic-email-helper/common/logger"
	"github.com/Akhil-Baki/empathetic-email-helper/common/metrics"
)

// SystemPrompt sets the assistant persona for every generated reply.
const SystemPrompt = "You are a helpful and empathetic customer support assistant. " +
	"Always respond in a friendly, professional, and understanding tone. " +
	"If the customer is upset, show empathy and reassure them."

var ErrEmptyBody = errors.New("email body is required")

// maxLoggedErrorLen caps upstream error text, which can echo the whole response body.
const maxLoggedErrorLen = 512

// UpstreamError reports a failed completion call. It is never retried.
type UpstreamError struct {
	Kind llm.ErrorKind
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion request failed (%s): %v", e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type ReplyService interface {
	Generate(ctx context.Context, body string) (string, error)
}

type replyService struct {
	client  llm.Client
	timeout time.Duration
	metrics *metrics.ReplyMetrics
}

// NewReplyService wires the completion client. timeout bounds each upstream call;
// zero leaves the caller's context as the only deadline.
func NewReplyService(client llm.Client, timeout time.Duration, m *metrics.ReplyMetrics) ReplyService {
	return &replyService{
		client:  client,
		timeout: timeout,
		metrics: m,
	}
}

// BuildMessages returns the two-turn conversation sent upstream for body.
func BuildMessages(body string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: SystemPrompt},
		{Role: llm.RoleUser, Content: body},
	}
}

func (s *replyService) Generate(ctx context.Context, body string) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Provider:  logger.Ptr(s.client.Provider()),
		Component: "email_helper.service.reply",
	})

	if body == "" {
		s.metrics.ObserveReply(metrics.OutcomeInvalid)
		return "", ErrEmptyBody
	}

	sc := logger.StartSpan(ctx, "reply.generate", trace.WithSpanKind(trace.SpanKindClient))
	defer sc.End()
	ctx = sc.Context()
	sc.Span().SetAttributes(
		attribute.String("llm.provider", s.client.Provider()),
		attribute.String("llm.model", s.client.Model()),
		attribute.Int("email.body_length", len(body)),
	)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Messages: BuildMessages(body),
	})
	elapsed := time.Since(start)

	if err != nil {
		kind := llm.Classify(err)
		sc.RecordError(err)
		s.metrics.ObserveUpstream(s.client.Provider(), string(kind), elapsed.Seconds())
		s.metrics.ObserveReply(metrics.OutcomeUpstream)

		slog.ErrorContext(ctx, "reply generation failed",
			"error", logger.Truncate(err.Error(), maxLoggedErrorLen),
			"kind", kind,
			"model", s.client.Model(),
			"duration_ms", elapsed.Milliseconds(),
			"body_length", len(body))
		return "", &UpstreamError{Kind: kind, Err: err}
	}

	s.metrics.ObserveUpstream(s.client.Provider(), metrics.OutcomeSuccess, elapsed.Seconds())
	s.metrics.ObserveReply(metrics.OutcomeSuccess)

	slog.InfoContext(ctx, "reply generated",
		"model", s.client.Model(),
		"duration_ms", elapsed.Milliseconds(),
		"finish_reason", resp.FinishReason,
		"reply_length", len(resp.Content))

	return resp.Content, nil
}
