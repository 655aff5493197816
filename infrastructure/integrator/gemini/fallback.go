package gemini

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/sirupsen/logrus"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
)

const (
	SecurityUnavailableText = "Security analysis temporarily unavailable. Please check camera feed manually."
	ForecastNoDataText      = "Not enough sales history yet: at least three months of data are needed for a moving-average forecast."
	GenericUnavailableText  = "Analysis temporarily unavailable. Please try again later."

	advisorAckTemplate = `I have received your message: "%s". I am processing your request and will provide a detailed analysis shortly.`
)

var normalSecurityResponses = []string{
	"No suspicious activity detected. Store appears to be operating normally with customers browsing products.",
	"Normal activity observed. Customers are shopping at the countertop area. No security concerns identified.",
	"All clear. Store staff and customers present, typical retail environment detected.",
	"Security check complete. No unusual behavior or suspicious items detected in the monitored area.",
	"Store operating normally. Customer activity patterns appear standard for retail environment.",
	"No security threats detected. All individuals appear to be legitimate customers or staff members.",
	"Normal retail activity observed. No signs of theft, unusual behavior, or unauthorized access detected.",
	"Security analysis complete. Store environment appears safe with normal customer interactions.",
}

var suspiciousSecurityResponses = []string{
	"Minor concern detected: Individual lingering near high-value items for extended period. Staff attention recommended.",
	"Observation: Customer appears to be monitoring staff movements. Increased awareness suggested.",
	"Note: Unusual bag size detected. Customer service interaction recommended for verification.",
}

// FallbackNarrator responde sem chamar o provedor. A escolha do texto é
// determinística: a mesma entrada sempre gera a mesma saída.
type FallbackNarrator struct{}

func NewFallbackNarrator() *FallbackNarrator {
	return &FallbackNarrator{}
}

func (FallbackNarrator) Narrate(_ context.Context, req geminidomain.NarrationRequest) (string, error) {
	switch req.Topic {
	case geminidomain.TopicForecast:
		if len(req.Facts) == 0 {
			return "- " + ForecastNoDataText, nil
		}
		return "- " + strings.Join(req.Facts, "\n- "), nil

	case geminidomain.TopicAdvisor:
		return fmt.Sprintf(advisorAckTemplate, req.Subject), nil

	case geminidomain.TopicSecurity:
		return pickSecurityResponse(checksum([]byte(req.Prompt + req.Subject))), nil
	}

	return GenericUnavailableText, nil
}

func (FallbackNarrator) AnalyzeImage(_ context.Context, req geminidomain.ImageRequest) (string, error) {
	return pickSecurityResponse(checksum(req.Image)), nil
}

// pickSecurityResponse usa 1 em cada 10 valores para um achado suspeito.
func pickSecurityResponse(sum uint32) string {
	if sum%10 == 0 {
		return suspiciousSecurityResponses[(sum/10)%uint32(len(suspiciousSecurityResponses))]
	}
	return normalSecurityResponses[sum%uint32(len(normalSecurityResponses))]
}

func checksum(data []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return h.Sum32()
}

type fallbackChain struct {
	primary  Narrator
	fallback Narrator
}

// WithFallback compõe dois Narrators: falhas do primário são respondidas pelo
// fallback. Na análise de imagem só a cota excedida usa o fallback; os demais
// erros devolvem SecurityUnavailableText.
func WithFallback(primary, fallback Narrator) Narrator {
	if primary == nil {
		return fallback
	}
	return &fallbackChain{primary: primary, fallback: fallback}
}

func (c *fallbackChain) Narrate(ctx context.Context, req geminidomain.NarrationRequest) (string, error) {
	text, err := c.primary.Narrate(ctx, req)
	if err == nil {
		return text, nil
	}

	logrus.WithFields(logrus.Fields{
		"topic": req.Topic,
		"class": geminidomain.Classify(err).Error(),
	}).Info("gemini: usando resposta de fallback")

	return c.fallback.Narrate(ctx, req)
}

func (c *fallbackChain) AnalyzeImage(ctx context.Context, req geminidomain.ImageRequest) (string, error) {
	text, err := c.primary.AnalyzeImage(ctx, req)
	if err == nil {
		return text, nil
	}

	class := geminidomain.Classify(err)
	logrus.WithField("class", class.Error()).Info("gemini: análise de imagem indisponível")

	if class == geminidomain.ErrQuotaExceeded {
		return c.fallback.AnalyzeImage(ctx, req)
	}

	return SecurityUnavailableText, nil
}
