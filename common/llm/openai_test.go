package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Akhil-Baki/empathetic-email-helper/common/llm"
)

type openaiRequest struct {
	Model               string  `json:"model"`
	MaxCompletionTokens int     `json:"max_completion_tokens"`
	Temperature         float64 `json:"temperature"`
	Messages            []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const openaiCompletion = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4o-mini",
	"choices": [{
		"index": 0,
		"message": {"role": "assistant", "content": "I'm so sorry about the delay."},
		"finish_reason": "stop"
	}],
	"usage": {"prompt_tokens": 40, "completion_tokens": 9, "total_tokens": 49}
}`

var _ = Describe("OpenAI client", func() {
	var (
		srv      *httptest.Server
		calls    atomic.Int32
		captured openaiRequest
		authz    string
		status   int
		body     string
		delay    time.Duration
		client   llm.Client
	)

	BeforeEach(func() {
		calls.Store(0)
		captured = openaiRequest{}
		status = http.StatusOK
		body = openaiCompletion
		delay = 0

		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			defer GinkgoRecover()
			Expect(r.URL.Path).To(Equal("/chat/completions"))
			authz = r.Header.Get("Authorization")
			Expect(json.NewDecoder(r.Body).Decode(&captured)).To(Succeed())

			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-r.Context().Done():
					return
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		DeferCleanup(srv.Close)

		var err error
		client, err = llm.New(llm.Config{
			Provider:  llm.ProviderOpenAI,
			APIKey:    "sk-test",
			BaseURL:   srv.URL + "/",
			Model:     "gpt-4o-mini",
			MaxTokens: 256,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	complete := func(ctx context.Context) (*llm.CompletionResponse, error) {
		return client.Complete(ctx, llm.CompletionRequest{
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: "be kind"},
				{Role: llm.RoleUser, Content: "where is my order?"},
			},
		})
	}

	It("sends system and user turns in order and returns the first choice", func() {
		resp, err := complete(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Content).To(Equal("I'm so sorry about the delay."))
		Expect(resp.FinishReason).To(Equal("stop"))
		Expect(resp.PromptTokens).To(Equal(40))
		Expect(resp.CompletionTokens).To(Equal(9))

		Expect(calls.Load()).To(BeEquivalentTo(1))
		Expect(authz).To(Equal("Bearer sk-test"))
		Expect(captured.Model).To(Equal("gpt-4o-mini"))
		Expect(captured.MaxCompletionTokens).To(Equal(256))
		Expect(captured.Messages).To(HaveLen(2))
		Expect(captured.Messages[0].Role).To(Equal("system"))
		Expect(captured.Messages[0].Content).To(Equal("be kind"))
		Expect(captured.Messages[1].Role).To(Equal("user"))
		Expect(captured.Messages[1].Content).To(Equal("where is my order?"))
	})

	It("forwards an explicit temperature", func() {
		temp := 0.2
		_, err := client.Complete(context.Background(), llm.CompletionRequest{
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
			Temperature: &temp,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(captured.Temperature).To(BeNumerically("~", 0.2))
	})

	It("fails with ErrNoChoices when the upstream returns no candidates", func() {
		body = `{"id":"chatcmpl-2","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`

		_, err := complete(context.Background())
		Expect(err).To(MatchError(llm.ErrNoChoices))
		Expect(llm.Classify(err)).To(Equal(llm.KindMalformedResponse))
	})

	DescribeTable("fails with ErrNoChoices when the first choice carries no text",
		func(message string) {
			body = `{"id":"chatcmpl-3","object":"chat.completion","created":1,"model":"gpt-4o-mini",` +
				`"choices":[{"index":0,"finish_reason":"stop","message":` + message + `}]}`

			resp, err := complete(context.Background())
			Expect(resp).To(BeNil())
			Expect(err).To(MatchError(llm.ErrNoChoices))
			Expect(llm.Classify(err)).To(Equal(llm.KindMalformedResponse))
		},
		Entry("refusal with null content", `{"role":"assistant","content":null,"refusal":"I can't help with that."}`),
		Entry("empty content", `{"role":"assistant","content":"","refusal":null}`),
		Entry("tool call only", `{"role":"assistant","tool_calls":[{"id":"call_1","type":"function","function":{"name":"lookup","arguments":"{}"}}]}`),
	)

	It("classifies an unparsable success body as a malformed response", func() {
		body = `not json at all`

		_, err := complete(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(llm.Classify(err)).To(Equal(llm.KindMalformedResponse))
		Expect(calls.Load()).To(BeEquivalentTo(1))
	})

	DescribeTable("does not retry failed calls",
		func(code int, kind llm.ErrorKind) {
			status = code
			body = `{"error":{"message":"upstream said no","type":"error","code":"nope"}}`

			_, err := complete(context.Background())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).NotTo(BeEmpty())
			Expect(llm.Classify(err)).To(Equal(kind))
			Expect(calls.Load()).To(BeEquivalentTo(1))
		},
		Entry("unauthorized", http.StatusUnauthorized, llm.KindAuth),
		Entry("rate limited", http.StatusTooManyRequests, llm.KindRateLimited),
		Entry("server error", http.StatusInternalServerError, llm.KindUpstreamServer),
		Entry("bad request", http.StatusBadRequest, llm.KindBadRequest),
	)

	It("reports a timeout when the context deadline passes", func() {
		delay = 2 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := complete(ctx)
		Expect(err).To(HaveOccurred())
		Expect(llm.Classify(err)).To(Equal(llm.KindTimeout))
	})
})
