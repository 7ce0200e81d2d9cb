package service_test

import (
	"context"
	"sync"

	"github.com/Akhil-Baki/empathetic-email-helper/common/llm"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/model"
)

type mockLLMClient struct {
	mu         sync.Mutex
	requests   []llm.CompletionRequest
	completeFn func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error)
}

func (m *mockLLMClient) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return &llm.CompletionResponse{Content: "Thanks for reaching out!", FinishReason: "stop"}, nil
}

func (m *mockLLMClient) Provider() string {
	return llm.ProviderOpenAI
}

func (m *mockLLMClient) Model() string {
	return "gpt-4o-mini"
}

func (m *mockLLMClient) Requests() []llm.CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]llm.CompletionRequest(nil), m.requests...)
}

type mockEmailStore struct {
	getByIDFn func(ctx context.Context, id string) (*model.Email, error)
	listFn    func(ctx context.Context) ([]model.Email, error)
}

func (m *mockEmailStore) GetByID(ctx context.Context, id string) (*model.Email, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockEmailStore) List(ctx context.Context) ([]model.Email, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Email{}, nil
}
