// Package oracle supplies crossword word/clue pairs. The generative
// backend is treated as an opaque service: it gets a prompt, it returns
// JSON, and everything else (layout, validation) happens locally.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"mindgym.dev/mindgym/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = "You write crossword material. Reply with a JSON array only, " +
	`each element {"answer": "...", "clue": "..."}. Answers are single uppercase ` +
	"English words, 3-10 letters, no spaces or punctuation."

// OpenAI asks a chat-completions model for word/clue pairs.
type OpenAI struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func NewOpenAI(apiKey, model string, logger *slog.Logger) *OpenAI {
	if model == "" {
		model = DefaultModel
	}
	return &OpenAI{client: openai.NewClient(apiKey), model: model, logger: logger}
}

func (o *OpenAI) Words(ctx context.Context, topic string, count int) ([]domain.WordEntry, error) {
	prompt := fmt.Sprintf("Give me %d crossword entries about %q.", count, topic)
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("oracle completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("oracle returned no choices")
	}
	words, err := ParseWords(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("oracle words", "topic", topic, "requested", count, "got", len(words))
	return words, nil
}

// ParseWords decodes the oracle reply, tolerating a fenced code block
// around the JSON, and normalizes answers to uppercase A-Z tokens.
// Entries with unusable answers are skipped rather than failing the
// whole batch.
func ParseWords(reply string) ([]domain.WordEntry, error) {
	trimmed := strings.TrimSpace(reply)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var raw []domain.WordEntry
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("decode oracle reply: %w", err)
	}
	out := make([]domain.WordEntry, 0, len(raw))
	for _, w := range raw {
		answer := strings.ToUpper(strings.TrimSpace(w.Answer))
		if !alphabetic(answer) || len(answer) < 2 {
			continue
		}
		out = append(out, domain.WordEntry{Answer: answer, Clue: strings.TrimSpace(w.Clue)})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("oracle reply had no usable entries")
	}
	return out, nil
}

func alphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return len(s) > 0
}
