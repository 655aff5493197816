package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/advisor"
	"github.com/vfg2006/stockwise-api/internal/usecases/advisor/mocks"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAdvisorChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAdvisor(ctrl)

	t.Run("resposta", func(t *testing.T) {
		service.EXPECT().Chat(gomock.Any(), "How is bread selling?").
			Return(&domain.ChatResponse{Sender: advisor.SenderAI, Text: "Bread is steady."}, nil)

		rec := serve(t, Advisor(service), http.MethodPost, "/api/advisor/chat", `{"message":"How is bread selling?"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sender":"ai","text":"Bread is steady."}`, rec.Body.String())
	})

	t.Run("mensagem vazia", func(t *testing.T) {
		service.EXPECT().Chat(gomock.Any(), "").Return(nil, advisor.ErrEmptyMessage)

		rec := serve(t, Advisor(service), http.MethodPost, "/api/advisor/chat", `{"message":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})

	t.Run("corpo inválido", func(t *testing.T) {
		rec := serve(t, Advisor(service), http.MethodPost, "/api/advisor/chat", `message`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("falha inesperada", func(t *testing.T) {
		service.EXPECT().Chat(gomock.Any(), "hi").Return(nil, errors.New("boom"))

		rec := serve(t, Advisor(service), http.MethodPost, "/api/advisor/chat", `{"message":"hi"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
