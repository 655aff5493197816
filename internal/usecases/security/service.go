package security

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini"
	geminidomain "github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/stockwise-api/infrastructure/repository"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/log"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// TimeLayout é o formato do campo "time" exibido no painel.
	TimeLayout = "15:04:05"

	// ImagesURLPrefix é a rota que serve o diretório de imagens.
	ImagesURLPrefix = "/images/"
)

var (
	ErrAlertNotFound   = errors.New("alerta não encontrado")
	ErrInvalidSeverity = errors.New("severidade inválida")
	ErrNoImages        = errors.New("nenhuma imagem disponível para análise")
)

var imageMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type Security interface {
	ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.SecurityAlert, error)
	ConfirmAlert(ctx context.Context, id int64) error
	DismissAlert(ctx context.Context, id int64) error
	GenerateAlert(ctx context.Context) (*domain.SecurityAlert, error)
}

type Service struct {
	alerts    repository.AlertRepository
	narrator  gemini.Narrator
	imagesDir string
	maxAlerts int
	loc       *time.Location
	now       func() time.Time
	pick      func(n int) int
}

func NewService(alerts repository.AlertRepository, narrator gemini.Narrator, cfg config.AlertGenerator, loc *time.Location) Security {
	if loc == nil {
		loc = time.UTC
	}
	if cfg.MaxAlerts <= 0 {
		cfg.MaxAlerts = DefaultLimit
	}

	return &Service{
		alerts:    alerts,
		narrator:  narrator,
		imagesDir: cfg.ImagesDir,
		maxAlerts: cfg.MaxAlerts,
		loc:       loc,
		now:       time.Now,
		pick:      rand.IntN,
	}
}

// ListAlerts devolve apenas alertas pendentes, do mais novo para o mais antigo.
func (s *Service) ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]domain.SecurityAlert, error) {
	if filter.Severity != "" && !filter.Severity.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeverity, filter.Severity)
	}

	filter.Status = domain.AlertPending
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	return s.alerts.ListAlerts(ctx, filter)
}

func (s *Service) ConfirmAlert(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, domain.AlertConfirmed)
}

func (s *Service) DismissAlert(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, domain.AlertDismissed)
}

func (s *Service) setStatus(ctx context.Context, id int64, status domain.AlertStatus) error {
	found, err := s.alerts.UpdateAlertStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !found {
		return ErrAlertNotFound
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"alert_id": id,
		"status":   status,
	}).Info("security: alerta atualizado")

	return nil
}

// GenerateAlert sorteia uma imagem, pede a análise ao Narrator e grava o
// resultado como alerta pendente. Mantém apenas os maxAlerts mais recentes.
func (s *Service) GenerateAlert(ctx context.Context) (*domain.SecurityAlert, error) {
	logger := log.ForContext(ctx)

	images, err := ListImages(s.imagesDir)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w em %s", ErrNoImages, s.imagesDir)
	}

	rel := images[s.pick(len(images))]
	data, err := os.ReadFile(filepath.Join(s.imagesDir, rel))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler imagem %s: %w", rel, err)
	}

	analysis, err := s.narrator.AnalyzeImage(ctx, geminidomain.ImageRequest{
		Prompt:   gemini.SecurityPrompt,
		Image:    data,
		MimeType: imageMimeTypes[strings.ToLower(filepath.Ext(rel))],
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	alert, err := s.alerts.CreateAlert(ctx, &domain.SecurityAlert{
		Title:     strings.TrimSpace(analysis),
		Time:      now.In(s.loc).Format(TimeLayout),
		Severity:  ClassifySeverity(analysis),
		Image:     ImagesURLPrefix + filepath.ToSlash(rel),
		Status:    domain.AlertPending,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	pruned, err := s.alerts.PruneAlerts(ctx, s.maxAlerts)
	if err != nil {
		logger.WithError(err).Warn("security: erro ao podar alertas antigos")
	}

	logger.WithFields(log.Fields{
		"alert_id": alert.ID,
		"severity": alert.Severity,
		"image":    alert.Image,
		"pruned":   pruned,
	}).Info("security: alerta gerado")

	return alert, nil
}

// ListImages devolve os caminhos relativos das imagens sob dir, em ordem.
func ListImages(dir string) ([]string, error) {
	images := make([]string, 0)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := imageMimeTypes[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		images = append(images, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar imagens: %w", err)
	}

	sort.Strings(images)
	return images, nil
}

var (
	highKeywords   = []string{"theft", "suspicious"}
	mediumKeywords = []string{"unusual", "out of place"}
	negations      = []string{"no ", "not ", "nothing ", "without "}
)

// ClassifySeverity procura palavras-chave na análise. Frases negadas ("No
// suspicious activity detected.") não contam.
func ClassifySeverity(analysis string) domain.AlertSeverity {
	severity := domain.SeverityLow

	for _, sentence := range splitSentences(strings.ToLower(analysis)) {
		if negated(sentence) {
			continue
		}
		if containsAny(sentence, highKeywords) {
			return domain.SeverityHigh
		}
		if containsAny(sentence, mediumKeywords) {
			severity = domain.SeverityMedium
		}
	}

	return severity
}

func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
}

func negated(sentence string) bool {
	sentence = " " + strings.TrimSpace(sentence) + " "
	for _, n := range negations {
		if strings.Contains(sentence, " "+n) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
