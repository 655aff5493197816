package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
	narratormocks "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Chat(t *testing.T) {
	ctrl := gomock.NewController(t)
	narrator := narratormocks.NewMockNarrator(ctrl)
	svc := NewService(narrator)

	narrator.EXPECT().Narrate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req geminidomain.NarrationRequest) (string, error) {
			assert.Equal(t, geminidomain.TopicAdvisor, req.Topic)
			assert.Equal(t, "Should I stock more bread?", req.Subject)
			assert.Contains(t, req.Prompt, "Question: Should I stock more bread?")
			return "  Yes, bread sells out by noon on Fridays.\n", nil
		})

	resp, err := svc.Chat(context.Background(), "  Should I stock more bread? ")
	require.NoError(t, err)
	assert.Equal(t, SenderAI, resp.Sender)
	assert.Equal(t, "Yes, bread sells out by noon on Fridays.", resp.Text)
}

func TestService_Chat_FallbackAcknowledges(t *testing.T) {
	svc := NewService(gemini.NewFallbackNarrator())

	resp, err := svc.Chat(context.Background(), "How is my stock?")
	require.NoError(t, err)
	assert.Equal(t, `I have received your message: "How is my stock?". I am processing your request and will provide a detailed analysis shortly.`, resp.Text)
}

func TestService_Chat_Validation(t *testing.T) {
	svc := NewService(gemini.NewFallbackNarrator())

	_, err := svc.Chat(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.Chat(context.Background(), strings.Repeat("á", MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrMessageTooLong)

	_, err = svc.Chat(context.Background(), strings.Repeat("á", MaxMessageLength))
	assert.NoError(t, err)
}
