package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/scheduler"
	"github.com/vfg2006/stockwise-api/internal/usecases/security"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

// AlertGenerator é o job agendado que também pode ser disparado manualmente.
type AlertGenerator interface {
	Run(ctx context.Context) (*domain.SecurityAlert, error)
	GetStatus() map[string]any
}

func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

// ListSecurityAlerts godoc
// @Summary      Alertas pendentes
// @Tags         security
// @Produce      json
// @Param        severity  query     string  false  "High, Medium ou Low"
// @Param        page      query     int     false  "Página (1)"
// @Param        limit     query     int     false  "Itens por página (10, máx. 100)"
// @Success      200       {array}   domain.SecurityAlert
// @Failure      400       {object}  apiErrors.APIError
// @Router       /api/security/alerts [get]
func ListSecurityAlerts(service security.Security) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, okPage := queryInt(r, "page")
		limit, okLimit := queryInt(r, "limit")
		if !okPage || !okLimit {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page e limit devem ser numéricos", nil)
			return
		}

		filter := domain.AlertFilter{
			Severity: domain.AlertSeverity(r.URL.Query().Get("severity")),
			Page:     page,
			Limit:    limit,
		}

		alerts, err := service.ListAlerts(r.Context(), filter)
		if err != nil {
			if errors.Is(err, security.ErrInvalidSeverity) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Severidade inválida", map[string]string{
					"severity": string(filter.Severity),
				})
				return
			}
			logrus.WithError(err).Error("security: erro ao listar alertas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar alertas", nil)
			return
		}

		if alerts == nil {
			alerts = []domain.SecurityAlert{}
		}
		writeJSON(w, http.StatusOK, alerts)
	}
}

// ConfirmSecurityAlert godoc
// @Summary      Confirma um alerta
// @Tags         security
// @Param        id   path      int  true  "ID do alerta"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  apiErrors.APIError
// @Router       /api/security/alerts/{id}/confirm [post]
func ConfirmSecurityAlert(service security.Security) http.HandlerFunc {
	return resolveAlert(service.ConfirmAlert, domain.AlertConfirmed)
}

// DismissSecurityAlert godoc
// @Summary      Descarta um alerta
// @Tags         security
// @Param        id   path      int  true  "ID do alerta"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  apiErrors.APIError
// @Router       /api/security/alerts/{id}/dismiss [post]
func DismissSecurityAlert(service security.Security) http.HandlerFunc {
	return resolveAlert(service.DismissAlert, domain.AlertDismissed)
}

func resolveAlert(resolve func(context.Context, int64) error, status domain.AlertStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do alerta inválido", nil)
			return
		}

		if err := resolve(r.Context(), id); err != nil {
			if errors.Is(err, security.ErrAlertNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Alerta não encontrado", map[string]int64{"id": id})
				return
			}
			logrus.WithError(err).WithField("alert_id", id).Error("security: erro ao atualizar alerta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar alerta", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":     id,
			"status": status,
		})
	}
}

// GenerateSecurityAlert godoc
// @Summary      Gera um alerta a partir de uma imagem
// @Tags         security
// @Produce      json
// @Success      201  {object}  domain.SecurityAlert
// @Failure      409  {object}  apiErrors.APIError
// @Router       /api/scheduler/alerts/run [post]
func GenerateSecurityAlert(generator AlertGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alert, err := generator.Run(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, scheduler.ErrGenerationRunning):
				apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Geração de alerta já em andamento", nil)
			case errors.Is(err, security.ErrNoImages):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhuma imagem disponível para análise", nil)
			default:
				logrus.WithError(err).Error("security: erro ao gerar alerta")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar alerta", nil)
			}
			return
		}

		writeJSON(w, http.StatusCreated, alert)
	}
}

// SchedulerStatus godoc
// @Summary      Estado do gerador de alertas
// @Tags         security
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/scheduler/status [get]
func SchedulerStatus(generator AlertGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, generator.GetStatus())
	}
}
