package utils

import (
	"errors"
	"strings"
	"time"
)

const PeriodLayout = "2006-01"

var ErrInvalidPeriod = errors.New("período inválido")

// ParseDate interpreta datas no formato YYYY-MM-DD. String vazia devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// NormalizePeriod aceita "YYYY-MM" ou um timestamp ISO-8601 e devolve o mês "YYYY-MM".
// Apenas os 7 primeiros caracteres são considerados e precisam formar um mês válido.
func NormalizePeriod(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < len(PeriodLayout) {
		return "", ErrInvalidPeriod
	}

	candidate := raw[:len(PeriodLayout)]
	if len(raw) > len(PeriodLayout) && raw[len(PeriodLayout)] != '-' {
		return "", ErrInvalidPeriod
	}

	if _, err := time.Parse(PeriodLayout, candidate); err != nil {
		return "", ErrInvalidPeriod
	}

	return candidate, nil
}

// PeriodOf devolve o mês de um instante no fuso informado.
func PeriodOf(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(PeriodLayout)
}

// SameDay compara datas de calendário no fuso informado.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc != nil {
		a, b = a.In(loc), b.In(loc)
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
