package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/log"
)

// CSVSource lê o Sales Dataset a cada chamada. Nada é mantido em memória
// entre leituras.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Path() string {
	return s.path
}

func (s *CSVSource) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	rows, err := s.ReadRows(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record)
	}
	return records, nil
}

func (s *CSVSource) ReadRows(ctx context.Context) ([]Row, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir CSV: %w", err)
	}
	defer file.Close()

	rows, err := ReadRows(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	return rows, nil
}

// ReadRows lê o cabeçalho, monta o Mapper e converte todas as linhas numa
// única passada. Linhas com aspas quebradas são contadas e ignoradas.
func ReadRows(ctx context.Context, r io.Reader) ([]Row, error) {
	logger := log.ForContext(ctx).WithField("component", "dataset")

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho do CSV: %w", err)
	}

	mapper, err := NewMapper(header)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0)
	broken, short := 0, 0
	for line := 2; ; line++ {
		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				broken++
				continue
			}
			return nil, fmt.Errorf("erro ao ler linha %d do CSV: %w", line, err)
		}

		if isBlank(values) {
			continue
		}

		row := mapper.Map(values)
		if row.Short {
			short++
		}
		rows = append(rows, row)
	}

	logger.WithFields(log.Fields{
		"rows":   len(rows),
		"broken": broken,
		"short":  short,
	}).Debug("dataset: CSV lido")

	return rows, nil
}

func isBlank(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
