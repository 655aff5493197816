package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/log"
)

const (
	SenderAI = "ai"

	MaxMessageLength = 2000
)

var (
	ErrEmptyMessage   = errors.New("mensagem vazia")
	ErrMessageTooLong = errors.New("mensagem muito longa")
)

const advisorPrompt = "You are a friendly business advisor for a small township grocery shop (spaza shop) in South Africa. " +
	"Answer the owner's question in plain language, in at most five short sentences, with practical advice " +
	"about stock, pricing, cash flow or customers. Amounts are in South African Rand (R).\n\nQuestion: %s"

type Advisor interface {
	Chat(ctx context.Context, message string) (*domain.ChatResponse, error)
}

type Service struct {
	narrator gemini.Narrator
}

func NewService(narrator gemini.Narrator) Advisor {
	return &Service{narrator: narrator}
}

func (s *Service) Chat(ctx context.Context, message string) (*domain.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, fmt.Errorf("%w: máximo de %d caracteres", ErrMessageTooLong, MaxMessageLength)
	}

	text, err := s.narrator.Narrate(ctx, geminidomain.NarrationRequest{
		Topic:   geminidomain.TopicAdvisor,
		Prompt:  fmt.Sprintf(advisorPrompt, message),
		Subject: message,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("advisor: erro ao gerar resposta")
		return nil, err
	}

	return &domain.ChatResponse{
		Sender: SenderAI,
		Text:   strings.TrimSpace(text),
	}, nil
}
