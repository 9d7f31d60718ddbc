package reporting

import (
	"errors"
	"fmt"
)

// Erros do contexto de relatórios
var (
	// Erros de validação
	ErrInvalidMonth  = errors.New("month must be formatted as YYYY-MM")
	ErrInvalidTarget = errors.New("target must be a positive number")

	// Erros de leitura
	ErrFetchOrders = errors.New("error fetching orders from database")
	ErrFetchLines  = errors.New("error fetching order lines from database")
	ErrFetchHourly = errors.New("error fetching hourly rows from database")
	ErrFetchTarget = errors.New("error fetching monthly targets from database")
	ErrSaveTarget  = errors.New("error saving monthly target")
)

// ReportError é um erro com contexto adicional para a API
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// wrapFetch anexa o erro de origem mantendo o sentinela para errors.Is
func wrapFetch(sentinel error, code string, err error) error {
	return NewReportError(sentinel, code, err.Error())
}
