package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Akhil-Baki/empathetic-email-helper/common/llm"
)

var _ = Describe("New", func() {
	It("requires an API key", func() {
		client, err := llm.New(llm.Config{Provider: llm.ProviderOpenAI})
		Expect(err).To(HaveOccurred())
		Expect(client).To(BeNil())
	})

	It("rejects an unknown provider", func() {
		client, err := llm.New(llm.Config{Provider: "llama", APIKey: "k"})
		Expect(err).To(MatchError(ContainSubstring("unsupported LLM provider")))
		Expect(client).To(BeNil())
	})

	It("defaults to OpenAI with gpt-4o-mini", func() {
		client, err := llm.New(llm.Config{APIKey: "k"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Provider()).To(Equal(llm.ProviderOpenAI))
		Expect(client.Model()).To(Equal("gpt-4o-mini"))
	})

	It("builds an Anthropic client with its default model", func() {
		client, err := llm.New(llm.Config{Provider: llm.ProviderAnthropic, APIKey: "k"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Provider()).To(Equal(llm.ProviderAnthropic))
		Expect(client.Model()).To(Equal("claude-sonnet-4-5"))
	})
})

var _ = DescribeTable("Classify",
	func(err error, expected llm.ErrorKind) {
		Expect(llm.Classify(err)).To(Equal(expected))
	},
	Entry("deadline exceeded", fmt.Errorf("openai chat completion: %w", context.DeadlineExceeded), llm.KindTimeout),
	Entry("canceled", context.Canceled, llm.KindCanceled),
	Entry("no choices", fmt.Errorf("openai chat completion: %w", llm.ErrNoChoices), llm.KindMalformedResponse),
	Entry("unparsable body", fmt.Errorf("error parsing response json: %w", &json.SyntaxError{Offset: 2}), llm.KindMalformedResponse),
	Entry("mistyped body", fmt.Errorf("error parsing response json: %w", &json.UnmarshalTypeError{Value: "string", Field: "choices"}), llm.KindMalformedResponse),
	Entry("plain transport error", errors.New("dial tcp: connection refused"), llm.KindNetwork),
)
