package geminidomain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Taxonomia de falhas do provedor de IA.
var (
	ErrQuotaExceeded = errors.New("gemini: cota excedida")
	ErrTransient     = errors.New("gemini: falha temporária")
	ErrFatal         = errors.New("gemini: falha definitiva")
	ErrNotConfigured = errors.New("gemini: chave de API não configurada")
	ErrEmptyResponse = errors.New("gemini: resposta vazia")
)

// Classify reduz qualquer erro do provedor a ErrQuotaExceeded, ErrTransient ou ErrFatal.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	for _, known := range []error{ErrQuotaExceeded, ErrTransient, ErrFatal} {
		if errors.Is(err, known) {
			return known
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrEmptyResponse) {
		return ErrTransient
	}
	if errors.Is(err, ErrNotConfigured) || errors.Is(err, context.Canceled) {
		return ErrFatal
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyAPIError(apiErr)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return classifyAPIError(*apiErrPtr)
	}

	return classifyMessage(err.Error())
}

// Wrap anexa a classificação ao erro original, preservando ambos para errors.Is.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", Classify(err), err)
}

func classifyAPIError(apiErr genai.APIError) error {
	switch {
	case apiErr.Code == http.StatusTooManyRequests || strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED"):
		return ErrQuotaExceeded
	case apiErr.Code >= http.StatusInternalServerError,
		apiErr.Code == http.StatusRequestTimeout,
		strings.EqualFold(apiErr.Status, "UNAVAILABLE"),
		strings.EqualFold(apiErr.Status, "DEADLINE_EXCEEDED"):
		return ErrTransient
	}

	return classifyMessage(apiErr.Message)
}

func classifyMessage(message string) error {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "quota"),
		strings.Contains(msg, "429"),
		strings.Contains(msg, "resource_exhausted"),
		strings.Contains(msg, "rate limit"):
		return ErrQuotaExceeded
	case strings.Contains(msg, "timeout"),
		strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "503"):
		return ErrTransient
	}

	return ErrFatal
}
