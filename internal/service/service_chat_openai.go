package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/voxai-app/voxai/internal/config"
	"github.com/voxai-app/voxai/internal/logger"
)

const chatSystemPrompt = "You are VoxAi, a concise assistant that helps users discover government welfare schemes. Answer in two or three sentences."

// openaiChatService proxies each message to a chat-completion API. The
// conversation is single-turn: only the system prompt and the current user
// message are sent.
type openaiChatService struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

func NewOpenAIChatService(cfg config.Chat, logger *logger.Logger) ChatService {
	clientConfig := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	model := cfg.OpenAIModel
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &openaiChatService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}
}

func (s *openaiChatService) Reply(ctx context.Context, userID string, message string) (string, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(message) == "" {
		return "", ErrInvalidDataProvided
	}

	response, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("chat completion request failed")
		return "", fmt.Errorf("%w: %w", ErrChatUnavailable, err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrChatUnavailable)
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
