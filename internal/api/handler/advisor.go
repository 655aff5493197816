package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/advisor"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

// AdvisorChat godoc
// @Summary      Conversa com o consultor
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ChatRequest  true  "Mensagem"
// @Success      200      {object}  domain.ChatResponse
// @Failure      400      {object}  apiErrors.APIError
// @Router       /api/advisor/chat [post]
func AdvisorChat(service advisor.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ChatRequest
		if !decodeBody(w, r, &req) {
			return
		}

		response, err := service.Chat(r.Context(), req.Message)
		if err != nil {
			switch {
			case errors.Is(err, advisor.ErrEmptyMessage), errors.Is(err, advisor.ErrMessageTooLong):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.WithError(err).Error("advisor: erro ao responder mensagem")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o assistente", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}
