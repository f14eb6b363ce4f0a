package organizing

import (
	"errors"
	"fmt"
)

var (
	ErrOrganizationNotFound = errors.New("organização não encontrada")
	ErrInvalidPlan          = errors.New("plano inexistente")
	ErrInvalidProvider      = errors.New("plataforma de anúncios desconhecida")
	ErrSheetsUnavailable    = errors.New("google sheets não configurado no servidor")
	ErrMissingClientName    = errors.New("nome do cliente é obrigatório")
	ErrInvalidRequest       = errors.New("requisição inválida")
)

// OrganizationError é um erro com contexto adicional para configuração de organizações
type OrganizationError struct {
	Err            error  // Erro base
	Code           string // Código de erro para API
	OrganizationID int    // Organização envolvida
	Details        string // Detalhes adicionais
}

func (e *OrganizationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OrganizationError) Unwrap() error {
	return e.Err
}

func NewOrganizationError(err error, code string, organizationID int, details string) *OrganizationError {
	return &OrganizationError{
		Err:            err,
		Code:           code,
		OrganizationID: organizationID,
		Details:        details,
	}
}
