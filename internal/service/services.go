package service

import (
	"github.com/voxai-app/voxai/internal/config"
	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/store"
)

type Services struct {
	AuthService   AuthService
	SchemeService SchemeService
	ChatService   ChatService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		SchemeService: NewSchemeService(storages.SchemeRepository, logger),
		ChatService:   newChatService(storages.SchemeRepository, cfg.Chat, logger),
	}
}

// newChatService picks the responder implementation from configuration.
// The completion-API responder requires a key; without one the keyword
// matcher is used regardless of the configured provider.
func newChatService(schemeRepository store.SchemeRepository, cfg config.Chat, logger *logger.Logger) ChatService {
	if cfg.Provider == config.ChatProviderOpenAI && cfg.OpenAIKey != "" {
		return NewOpenAIChatService(cfg, logger)
	}

	return NewRuleChatService(schemeRepository, logger)
}
