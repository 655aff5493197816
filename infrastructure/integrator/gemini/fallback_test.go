package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/geminiclient/mocks"
	narratormocks "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/mocks"
	"go.uber.org/mock/gomock"
)

func TestFallbackNarrator_Narrate(t *testing.T) {
	ctx := context.Background()
	fb := NewFallbackNarrator()

	tests := []struct {
		name string
		req  geminidomain.NarrationRequest
		want string
	}{
		{
			name: "previsão com fatos vira lista de tópicos",
			req: geminidomain.NarrationRequest{
				Topic: geminidomain.TopicForecast,
				Facts: []string{"2024-03: 19.17", "2024-04: 21.00"},
			},
			want: "- 2024-03: 19.17\n- 2024-04: 21.00",
		},
		{
			name: "previsão sem dados",
			req:  geminidomain.NarrationRequest{Topic: geminidomain.TopicForecast},
			want: "- " + ForecastNoDataText,
		},
		{
			name: "advisor ecoa a mensagem",
			req:  geminidomain.NarrationRequest{Topic: geminidomain.TopicAdvisor, Subject: "How is stock?"},
			want: `I have received your message: "How is stock?". I am processing your request and will provide a detailed analysis shortly.`,
		},
		{
			name: "tópico desconhecido",
			req:  geminidomain.NarrationRequest{Topic: "other"},
			want: GenericUnavailableText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fb.Narrate(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackNarrator_AnalyzeImageIsDeterministic(t *testing.T) {
	ctx := context.Background()
	fb := NewFallbackNarrator()
	req := geminidomain.ImageRequest{Image: []byte("frame-0001")}

	first, err := fb.AnalyzeImage(ctx, req)
	require.NoError(t, err)
	second, err := fb.AnalyzeImage(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, append(normalSecurityResponses, suspiciousSecurityResponses...), first)
}

func TestPickSecurityResponse(t *testing.T) {
	assert.Equal(t, suspiciousSecurityResponses[0], pickSecurityResponse(0))
	assert.Equal(t, suspiciousSecurityResponses[1], pickSecurityResponse(10))
	assert.Equal(t, normalSecurityResponses[1], pickSecurityResponse(1))
	assert.Equal(t, normalSecurityResponses[0], pickSecurityResponse(8))
}

func TestWithFallback(t *testing.T) {
	ctx := context.Background()
	image := geminidomain.ImageRequest{Image: []byte("frame")}
	expectedFallbackImage, _ := NewFallbackNarrator().AnalyzeImage(ctx, image)

	tests := []struct {
		name  string
		setup func(m *narratormocks.MockNarrator)
		run   func(n Narrator) (string, error)
		want  string
	}{
		{
			name: "primário responde",
			setup: func(m *narratormocks.MockNarrator) {
				m.EXPECT().Narrate(gomock.Any(), gomock.Any()).Return("texto do modelo", nil)
			},
			run: func(n Narrator) (string, error) {
				return n.Narrate(ctx, geminidomain.NarrationRequest{Topic: geminidomain.TopicAdvisor, Subject: "oi"})
			},
			want: "texto do modelo",
		},
		{
			name: "falha no primário usa fallback do advisor",
			setup: func(m *narratormocks.MockNarrator) {
				m.EXPECT().Narrate(gomock.Any(), gomock.Any()).Return("", geminidomain.ErrTransient)
			},
			run: func(n Narrator) (string, error) {
				return n.Narrate(ctx, geminidomain.NarrationRequest{Topic: geminidomain.TopicAdvisor, Subject: "oi"})
			},
			want: `I have received your message: "oi". I am processing your request and will provide a detailed analysis shortly.`,
		},
		{
			name: "cota excedida na imagem usa resposta enlatada",
			setup: func(m *narratormocks.MockNarrator) {
				m.EXPECT().AnalyzeImage(gomock.Any(), image).Return("", geminidomain.Wrap(errors.New("quota exceeded")))
			},
			run: func(n Narrator) (string, error) {
				return n.AnalyzeImage(ctx, image)
			},
			want: expectedFallbackImage,
		},
		{
			name: "erro fatal na imagem devolve texto de indisponibilidade",
			setup: func(m *narratormocks.MockNarrator) {
				m.EXPECT().AnalyzeImage(gomock.Any(), image).Return("", errors.New("invalid argument"))
			},
			run: func(n Narrator) (string, error) {
				return n.AnalyzeImage(ctx, image)
			},
			want: SecurityUnavailableText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			primary := narratormocks.NewMockNarrator(ctrl)
			tt.setup(primary)

			got, err := tt.run(WithFallback(primary, NewFallbackNarrator()))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithFallback_NilPrimary(t *testing.T) {
	fb := NewFallbackNarrator()
	assert.Same(t, fb, WithFallback(nil, fb))
}

func TestGeminiNarrator(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	narrator := New(client)
	ctx := context.Background()

	client.EXPECT().GenerateText(ctx, "prompt").Return("resposta", nil)
	text, err := narrator.Narrate(ctx, geminidomain.NarrationRequest{Prompt: "prompt"})
	require.NoError(t, err)
	assert.Equal(t, "resposta", text)

	client.EXPECT().
		AnalyzeImage(ctx, geminidomain.ImageRequest{Prompt: SecurityPrompt, Image: []byte{1}, MimeType: "image/jpeg"}).
		Return("", geminidomain.ErrQuotaExceeded)
	_, err = narrator.AnalyzeImage(ctx, geminidomain.ImageRequest{Image: []byte{1}})
	assert.ErrorIs(t, err, geminidomain.ErrQuotaExceeded)
}
