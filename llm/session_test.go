package llm_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskforce/llm"
)

// echoProvider replays scripted responses and records every request.
type echoProvider struct {
	responses []string
	requests  []*llm.ChatRequest
	err       error
}

func (p *echoProvider) next() string {
	if len(p.responses) == 0 {
		return ""
	}
	resp := p.responses[0]
	p.responses = p.responses[1:]
	return resp
}

func (p *echoProvider) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return &llm.ChatResponse{Content: p.next()}, nil
}

func (p *echoProvider) ChatStream(ctx context.Context, req *llm.ChatRequest) (<-chan llm.StreamChunk, error) {
	p.requests = append(p.requests, req)
	chunks := make(chan llm.StreamChunk, 3)
	if p.err != nil {
		chunks <- llm.StreamChunk{Error: p.err, Done: true}
	} else {
		for _, part := range []string{p.next()} {
			if part != "" {
				chunks <- llm.StreamChunk{Content: part}
			}
		}
		chunks <- llm.StreamChunk{Done: true}
	}
	close(chunks)
	return chunks, nil
}

var _ = Describe("Session", func() {
	It("prepends system prompts and accumulates history", func() {
		provider := &echoProvider{responses: []string{"hello", "again"}}
		session := llm.NewSession(provider, "qwen/qwen3-32b", "be helpful")

		out, err := session.Send(context.Background(), "hi")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("hello"))

		_, err = session.Send(context.Background(), "more")
		Expect(err).NotTo(HaveOccurred())

		Expect(provider.requests).To(HaveLen(2))
		second := provider.requests[1]
		Expect(second.Model).To(Equal("qwen/qwen3-32b"))
		Expect(second.Messages[0].Role).To(Equal(llm.RoleSystem))
		Expect(second.Messages[0].Content).To(Equal("be helpful"))
		// history: user "hi", assistant "hello", then the new user message
		Expect(second.Messages[1].Content).To(Equal("hi"))
		Expect(second.Messages[2].Content).To(Equal("hello"))
		Expect(second.Messages[3].Content).To(Equal("more"))

		Expect(session.GetHistory()).To(HaveLen(4))
	})

	It("streams deltas through the chunk callback", func() {
		provider := &echoProvider{responses: []string{"streamed answer"}}
		session := llm.NewSession(provider, "qwen/qwen3-32b")

		var seen []string
		out, err := session.SendStream(context.Background(), "hi", func(content string) {
			seen = append(seen, content)
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("streamed answer"))
		Expect(seen).To(ConsistOf("streamed answer"))
	})

	It("keeps history clean when the stream fails", func() {
		provider := &echoProvider{err: errors.New("rate limited")}
		session := llm.NewSession(provider, "qwen/qwen3-32b")

		_, err := session.SendStream(context.Background(), "hi", nil)
		Expect(err).To(MatchError("rate limited"))
		Expect(session.GetHistory()).To(BeEmpty())
	})

	It("carries stop sequences on every request", func() {
		provider := &echoProvider{responses: []string{"ok"}}
		session := llm.NewSession(provider, "qwen/qwen3-32b")
		session.SetStopSequences([]string{"<OBSERVATION>"})

		_, err := session.Send(context.Background(), "hi")
		Expect(err).NotTo(HaveOccurred())
		Expect(provider.requests[0].StopSequences).To(ConsistOf("<OBSERVATION>"))
	})
})
