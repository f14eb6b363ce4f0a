package organizing

import (
	"context"
	"errors"
	"strings"

	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/googlesheets"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CreateSheet cria a planilha do cliente na pasta da organização e passa a usá-la como fonte de vendas
func (s *Service) CreateSheet(ctx context.Context, organizationID int, req *domain.CreateSheetRequest) (*domain.Spreadsheet, error) {
	if s.sheets == nil {
		return nil, NewOrganizationError(ErrSheetsUnavailable, apiErrors.ErrSheetsUnavailable, organizationID, "")
	}

	if req == nil || strings.TrimSpace(req.ClientName) == "" {
		return nil, NewOrganizationError(ErrMissingClientName, apiErrors.ErrMissingRequiredData, organizationID, "")
	}

	org, err := s.getOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	sheet, err := s.sheets.CreateFromTemplate(ctx, strings.TrimSpace(req.ClientName), strings.TrimSpace(req.ClientEmail), deref(org.DriveFolderID))
	if err != nil {
		if errors.Is(err, googlesheets.ErrDriveUnavailable) {
			return nil, NewOrganizationError(ErrSheetsUnavailable, apiErrors.ErrSheetsUnavailable, organizationID, err.Error())
		}
		return nil, NewOrganizationError(err, apiErrors.ErrExternalService, organizationID, "erro ao copiar modelo de planilha")
	}

	org.GoogleSheetID = &sheet.SpreadsheetID
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, NewOrganizationError(err, apiErrors.ErrDatabaseOperation, organizationID, "planilha criada mas não vinculada à organização")
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": organizationID,
		"spreadsheet_id":  sheet.SpreadsheetID,
	}).Info("Planilha vinculada à organização")

	return sheet, nil
}

// ServiceAccountEmail devolve nil quando o servidor não tem conta de serviço
func (s *Service) ServiceAccountEmail() *string {
	if s.opts.ServiceAccountPath == "" {
		return nil
	}

	email, err := googlesheets.ServiceAccountEmail(s.opts.ServiceAccountPath)
	if err != nil {
		logrus.WithError(err).Debug("Conta de serviço do Google indisponível")
		return nil
	}

	return &email
}
