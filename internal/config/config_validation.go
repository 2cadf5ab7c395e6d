package config

import (
	"strings"
	"time"
)

// Defaults applied when a value is missing from every source. The 7-day
// token lifetime is the documented session length of the product.
const (
	DefaultTokenDuration = 7 * 24 * time.Hour
	DefaultTokenIssuer   = "voxai"
	DefaultHTTPAddress   = ":8080"
	DefaultChatProvider  = ChatProviderRules
)

// Recognised Chat.Provider values.
const (
	ChatProviderRules  = "rules"
	ChatProviderOpenAI = "openai"
)

// validate normalises the merged [StructuredConfig] and checks server-side
// invariants. Defaults are filled in here so that every later consumer can
// rely on non-zero values.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Chat.Provider == "" {
		cfg.Chat.Provider = DefaultChatProvider
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
