package llm

import "context"

// Session accumulates a conversation against a single provider/model pair.
// Missions are short-lived, so there is no pruning or compaction: a session
// lives for one dispatch and is discarded.
type Session struct {
	provider      Provider
	model         string
	systemPrompts []string
	messages      []Message
	stopSequences []string
}

func NewSession(provider Provider, model string, systemPrompts ...string) *Session {
	return &Session{
		provider:      provider,
		model:         model,
		systemPrompts: systemPrompts,
		messages:      []Message{},
	}
}

func (s *Session) AddSystemPrompt(prompt string) {
	s.systemPrompts = append(s.systemPrompts, prompt)
}

func (s *Session) SetStopSequences(sequences []string) {
	s.stopSequences = sequences
}

func (s *Session) GetHistory() []Message {
	return s.messages
}

func (s *Session) buildMessages(userMessage string) []Message {
	msgs := make([]Message, 0, len(s.systemPrompts)+len(s.messages)+1)
	for _, prompt := range s.systemPrompts {
		msgs = append(msgs, NewTextMessage(RoleSystem, prompt))
	}
	msgs = append(msgs, s.messages...)
	msgs = append(msgs, NewTextMessage(RoleUser, userMessage))
	return msgs
}

// Send sends a user message and waits for the complete response.
// Both sides of the exchange are appended to the session history.
func (s *Session) Send(ctx context.Context, userMessage string) (string, error) {
	req := &ChatRequest{
		Model:         s.model,
		Messages:      s.buildMessages(userMessage),
		StopSequences: s.stopSequences,
	}

	resp, err := s.provider.Chat(ctx, req)
	if err != nil {
		return "", err
	}

	s.messages = append(s.messages, NewTextMessage(RoleUser, userMessage))
	s.messages = append(s.messages, NewTextMessage(RoleAssistant, resp.Content))
	return resp.Content, nil
}

// SendStream sends a user message and streams the response, invoking onChunk
// for each content delta. The full response is returned once the stream ends
// and both messages are appended to the history.
func (s *Session) SendStream(ctx context.Context, userMessage string, onChunk func(content string)) (string, error) {
	req := &ChatRequest{
		Model:         s.model,
		Messages:      s.buildMessages(userMessage),
		StopSequences: s.stopSequences,
	}

	chunks, err := s.provider.ChatStream(ctx, req)
	if err != nil {
		return "", err
	}

	var full string
	for chunk := range chunks {
		if chunk.Error != nil {
			return "", chunk.Error
		}
		if chunk.Content != "" {
			full += chunk.Content
			if onChunk != nil {
				onChunk(chunk.Content)
			}
		}
	}

	s.messages = append(s.messages, NewTextMessage(RoleUser, userMessage))
	s.messages = append(s.messages, NewTextMessage(RoleAssistant, full))
	return full, nil
}
