package gemini

import (
	"context"

	"github.com/sirupsen/logrus"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/geminiclient"
)

// SecurityPrompt é o texto enviado junto de cada imagem da câmera.
const SecurityPrompt = "Analyze this image for any suspicious activity in a retail environment, " +
	"such as theft, unusual behavior, or unauthorized access. Describe what you see and flag " +
	"anything that seems out of place or potentially problematic. If nothing suspicious is " +
	"detected, state 'No suspicious activity detected.'"

// Narrator transforma números e perguntas em texto. Implementações devem respeitar
// o contexto e classificar falhas com geminidomain.Classify.
type Narrator interface {
	Narrate(ctx context.Context, req geminidomain.NarrationRequest) (string, error)
	AnalyzeImage(ctx context.Context, req geminidomain.ImageRequest) (string, error)
}

type GeminiNarrator struct {
	Client geminiclient.Client
}

func New(client geminiclient.Client) *GeminiNarrator {
	return &GeminiNarrator{Client: client}
}

func (n *GeminiNarrator) Narrate(ctx context.Context, req geminidomain.NarrationRequest) (string, error) {
	text, err := n.Client.GenerateText(ctx, req.Prompt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"topic": req.Topic,
			"error": err.Error(),
		}).Warn("gemini: falha ao gerar narrativa")
		return "", err
	}

	return text, nil
}

func (n *GeminiNarrator) AnalyzeImage(ctx context.Context, req geminidomain.ImageRequest) (string, error) {
	if req.Prompt == "" {
		req.Prompt = SecurityPrompt
	}
	if req.MimeType == "" {
		req.MimeType = "image/jpeg"
	}

	text, err := n.Client.AnalyzeImage(ctx, req)
	if err != nil {
		logrus.WithError(err).Warn("gemini: falha ao analisar imagem")
		return "", err
	}

	return text, nil
}
