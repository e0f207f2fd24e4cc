package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

type openAITipProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAITipProvider(apiKey, model string) TipProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAITipProvider{client: openai.NewClient(apiKey), model: model}
}

func (p *openAITipProvider) Name() string { return "openai" }

func (p *openAITipProvider) Tip(ctx context.Context, prompt string) (string, error) {
	res, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   80,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", errors.New("openai: no choices")
	}
	return res.Choices[0].Message.Content, nil
}

type geminiTipProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiTipProvider(ctx context.Context, apiKey, model string) (TipProvider, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiTipProvider{client: client, model: model}, nil
}

func (p *geminiTipProvider) Name() string { return "gemini" }

func (p *geminiTipProvider) Tip(ctx context.Context, prompt string) (string, error) {
	m := p.client.GenerativeModel(p.model)
	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(80)

	res, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: no content")
	}
	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("gemini: unexpected part type")
	}
	return string(text), nil
}

func (p *geminiTipProvider) Close() error { return p.client.Close() }
