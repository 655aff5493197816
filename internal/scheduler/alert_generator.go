package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/internal/usecases/security"
)

const defaultRunTimeout = time.Minute

var ErrGenerationRunning = errors.New("geração de alerta já em andamento")

// AlertGeneratorService agenda a análise periódica das imagens da câmera.
type AlertGeneratorService struct {
	scheduler *gocron.Scheduler
	config    config.AlertGenerator
	security  security.Security

	runMutex         sync.Mutex
	running          bool
	lastRunStartedAt time.Time
	lastRunEndedAt   time.Time
	lastError        string
	generated        int
}

func NewAlertGeneratorService(securityService security.Security, cfg config.AlertGenerator) *AlertGeneratorService {
	logrus.WithFields(logrus.Fields{
		"interval":   cfg.Interval.String(),
		"images_dir": cfg.ImagesDir,
		"max_alerts": cfg.MaxAlerts,
		"enabled":    cfg.Enabled,
	}).Info("Configuração do gerador de alertas carregada")

	return &AlertGeneratorService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		security:  securityService,
	}
}

// Start agenda o job e o interrompe quando o contexto for cancelado.
func (s *AlertGeneratorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Gerador de alertas desabilitado por configuração")
		return nil
	}

	if s.config.Interval <= 0 {
		return fmt.Errorf("intervalo do gerador de alertas inválido: %s", s.config.Interval)
	}

	logrus.WithField("interval", s.config.Interval.String()).Info("Iniciando gerador de alertas")

	_, err := s.scheduler.Every(s.config.Interval).SingletonMode().Do(func() {
		if _, err := s.Run(ctx); err != nil && !errors.Is(err, ErrGenerationRunning) {
			logrus.WithError(err).Error("Erro na geração agendada de alerta")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar gerador de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando gerador de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

// Run gera um alerta agora. Uma execução por vez; a concorrente recebe
// ErrGenerationRunning.
func (s *AlertGeneratorService) Run(ctx context.Context) (*domain.SecurityAlert, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		return nil, ErrGenerationRunning
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	ctx, cancel := context.WithTimeout(ctx, defaultRunTimeout)
	defer cancel()

	alert, err := s.security.GenerateAlert(ctx)

	s.runMutex.Lock()
	s.running = false
	s.lastRunEndedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.generated++
	}
	s.runMutex.Unlock()

	return alert, err
}

// TriggerManualSync dispara uma geração em segundo plano.
func (s *AlertGeneratorService) TriggerManualSync() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Geração de alerta já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando geração manual de alerta")
	go func() {
		if _, err := s.Run(context.Background()); err != nil && !errors.Is(err, ErrGenerationRunning) {
			logrus.WithError(err).Error("Erro na geração manual de alerta")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *AlertGeneratorService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"alert_generator_enabled":  s.config.Enabled,
		"alert_generator_interval": s.config.Interval.String(),
		"max_alerts":               s.config.MaxAlerts,
		"running":                  s.running,
		"alerts_generated":         s.generated,
		"last_run_started_at":      s.lastRunStartedAt,
		"last_run_completed_at":    s.lastRunEndedAt,
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	if _, next := s.scheduler.NextRun(); !next.IsZero() {
		status["next_run_at"] = next
	}

	return status
}
