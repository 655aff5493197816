package forecasting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

var (
	ErrDataUnavailable  = errors.New("fonte de dados de vendas indisponível")
	ErrSeriesNotOrdered = errors.New("série mensal fora de ordem cronológica")
)

// ForecastError carrega o código de API junto do erro original.
type ForecastError struct {
	Err    error
	Code   string
	Source string
}

func (e *ForecastError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Source)
	}
	return e.Err.Error()
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

func newDataUnavailable(source string, cause error) *ForecastError {
	return &ForecastError{
		Err:    fmt.Errorf("%w: %w", ErrDataUnavailable, cause),
		Code:   apiErrors.ErrDataUnavailable,
		Source: source,
	}
}
