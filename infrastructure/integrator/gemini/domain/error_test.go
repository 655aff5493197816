package geminidomain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"api 429", genai.APIError{Code: 429, Message: "Resource has been exhausted"}, ErrQuotaExceeded},
		{"api resource exhausted", genai.APIError{Code: 400, Status: "RESOURCE_EXHAUSTED"}, ErrQuotaExceeded},
		{"api ponteiro 503", &genai.APIError{Code: 503, Status: "UNAVAILABLE"}, ErrTransient},
		{"api 500 embrulhado", fmt.Errorf("chamada: %w", genai.APIError{Code: 500}), ErrTransient},
		{"api 400", genai.APIError{Code: 400, Message: "API key not valid"}, ErrFatal},
		{"deadline", context.DeadlineExceeded, ErrTransient},
		{"cancelado", context.Canceled, ErrFatal},
		{"mensagem com quota", errors.New("You exceeded your current quota"), ErrQuotaExceeded},
		{"mensagem com timeout", errors.New("dial tcp: i/o timeout"), ErrTransient},
		{"desconhecido", errors.New("boom"), ErrFatal},
		{"não configurado", ErrNotConfigured, ErrFatal},
		{"resposta vazia", ErrEmptyResponse, ErrTransient},
		{"já classificado", Wrap(genai.APIError{Code: 429}), ErrQuotaExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	original := genai.APIError{Code: 429, Message: "quota"}
	wrapped := Wrap(original)

	assert.ErrorIs(t, wrapped, ErrQuotaExceeded)

	var apiErr genai.APIError
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, 429, apiErr.Code)
}
