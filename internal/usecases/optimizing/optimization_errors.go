package optimizing

import (
	"errors"
	"fmt"
)

var (
	ErrOptimizationBusy   = errors.New("otimização já em andamento para a organização")
	ErrHistoryUnavailable = errors.New("histórico de alterações indisponível")
)

// OptimizationError é um erro com contexto adicional para otimização
type OptimizationError struct {
	Err            error  // Erro base
	Code           string // Código de erro para API
	OrganizationID int    // Organização envolvida
	Details        string // Detalhes adicionais
}

func (e *OptimizationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OptimizationError) Unwrap() error {
	return e.Err
}

func NewOptimizationError(err error, code string, organizationID int, details string) *OptimizationError {
	return &OptimizationError{
		Err:            err,
		Code:           code,
		OrganizationID: organizationID,
		Details:        details,
	}
}
