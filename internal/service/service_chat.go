package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/store"
	"github.com/voxai-app/voxai/models"
)

// chatRule maps trigger keywords to a reply builder. Rules are evaluated in
// order; the first rule with a keyword present in the message wins.
type chatRule struct {
	keywords []string
	reply    func(ctx context.Context, r *ruleChatService) (string, error)
}

// ruleChatService answers messages with a fixed ordered rule table. Replies
// for scheme questions are built from live store data, so newly added
// schemes show up without a restart.
type ruleChatService struct {
	schemeRepository store.SchemeRepository
	rules            []chatRule
	fallback         string
	logger           *logger.Logger
}

func NewRuleChatService(schemeRepository store.SchemeRepository, logger *logger.Logger) ChatService {
	s := &ruleChatService{
		schemeRepository: schemeRepository,
		fallback:         "Sorry, I did not understand that. Try asking about available schemes, or type 'help'.",
		logger:           logger,
	}

	s.rules = []chatRule{
		{
			keywords: []string{"hello", "hi", "hey", "namaste"},
			reply: func(ctx context.Context, r *ruleChatService) (string, error) {
				return "Hello! I can help you discover welfare schemes. Ask me about schemes or type 'help'.", nil
			},
		},
		{
			keywords: []string{"help", "what can you do"},
			reply: func(ctx context.Context, r *ruleChatService) (string, error) {
				return "You can ask me things like 'list schemes', 'education schemes' or 'health schemes'.", nil
			},
		},
		{
			keywords: []string{"education", "scholarship", "student"},
			reply: func(ctx context.Context, r *ruleChatService) (string, error) {
				return r.schemesByCategory(ctx, "education")
			},
		},
		{
			keywords: []string{"health", "medical", "insurance"},
			reply: func(ctx context.Context, r *ruleChatService) (string, error) {
				return r.schemesByCategory(ctx, "health")
			},
		},
		{
			keywords: []string{"agriculture", "farmer", "farming"},
			reply: func(ctx context.Context, r *ruleChatService) (string, error) {
				return r.schemesByCategory(ctx, "agriculture")
			},
		},
		{
			keywords: []string{"scheme", "schemes", "list", "available"},
			reply: func(ctx context.Context, r *ruleChatService) (string, error) {
				return r.allSchemes(ctx)
			},
		},
		{
			keywords: []string{"bye", "goodbye", "thanks", "thank you"},
			reply: func(ctx context.Context, r *ruleChatService) (string, error) {
				return "You're welcome! Come back anytime.", nil
			},
		},
	}

	return s
}

// Reply matches the lower-cased message against the rule table and returns
// the first matching rule's reply, or the fallback when nothing matches.
func (s *ruleChatService) Reply(ctx context.Context, userID string, message string) (string, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(message) == "" {
		return "", ErrInvalidDataProvided
	}

	normalized := strings.ToLower(message)
	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				reply, err := rule.reply(ctx, s)
				if err != nil {
					log.Err(err).Str("userID", userID).Msg("building chat reply failed")
					return "", fmt.Errorf("building chat reply failed: %w", err)
				}
				return reply, nil
			}
		}
	}

	return s.fallback, nil
}

func (s *ruleChatService) schemesByCategory(ctx context.Context, category string) (string, error) {
	schemes, err := s.schemeRepository.ListSchemes(ctx, models.SchemeFilter{Category: category})
	if err != nil {
		return "", err
	}

	if len(schemes) == 0 {
		return fmt.Sprintf("I could not find any %s schemes right now.", category), nil
	}

	return fmt.Sprintf("Here are the %s schemes I know about: %s.", category, joinTitles(schemes)), nil
}

func (s *ruleChatService) allSchemes(ctx context.Context) (string, error) {
	schemes, err := s.schemeRepository.ListSchemes(ctx, models.SchemeFilter{})
	if err != nil {
		return "", err
	}

	if len(schemes) == 0 {
		return "There are no schemes available yet.", nil
	}

	return fmt.Sprintf("Available schemes: %s.", joinTitles(schemes)), nil
}

func joinTitles(schemes []models.Scheme) string {
	titles := make([]string, len(schemes))
	for i, scheme := range schemes {
		titles[i] = scheme.Title
	}

	return strings.Join(titles, ", ")
}
