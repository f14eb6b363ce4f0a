package googlesheets

import (
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const titlePrefix = "Antigravity - "

var ErrDriveUnavailable = errors.New("google drive não configurado")

// TemplateService cria a planilha de um cliente a partir do modelo
type TemplateService struct {
	drive      FileCopier
	templateID string
}

func NewTemplateService(drive FileCopier, templateID string) *TemplateService {
	return &TemplateService{
		drive:      drive,
		templateID: templateID,
	}
}

// CreateFromTemplate copia o modelo para a pasta informada e compartilha como editor com o e-mail,
// ou com qualquer pessoa com o link quando não há e-mail. Falha ao compartilhar não desfaz a cópia.
func (t *TemplateService) CreateFromTemplate(ctx context.Context, clientName, clientEmail, folderID string) (*domain.Spreadsheet, error) {
	if t.drive == nil {
		return nil, ErrDriveUnavailable
	}

	title := titlePrefix + clientName

	spreadsheetID, err := t.drive.CopyFile(ctx, t.templateID, title, folderID)
	if err != nil {
		return nil, err
	}

	logger := logrus.WithField("spreadsheet_id", spreadsheetID)
	logger.Infof("Planilha criada: %s", title)

	if clientEmail != "" {
		err = t.drive.ShareWithUser(ctx, spreadsheetID, clientEmail)
	} else {
		err = t.drive.ShareWithAnyone(ctx, spreadsheetID)
	}
	if err != nil {
		logger.WithError(err).Warn("Não foi possível compartilhar a planilha")
	}

	return &domain.Spreadsheet{
		SpreadsheetID: spreadsheetID,
		URL:           fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", spreadsheetID),
		Title:         title,
	}, nil
}

type serviceAccountFile struct {
	ClientEmail string `json:"client_email"`
}

// ServiceAccountEmail lê o e-mail da conta de serviço, com quem as planilhas precisam ser compartilhadas
func ServiceAccountEmail(credentialsPath string) (string, error) {
	raw, err := os.ReadFile(credentialsPath)
	if err != nil {
		return "", errors.Wrap(err, "arquivo da conta de serviço não encontrado")
	}

	var file serviceAccountFile
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &file); err != nil {
		return "", errors.Wrap(err, "arquivo da conta de serviço inválido")
	}

	if file.ClientEmail == "" {
		return "", errors.New("client_email ausente na conta de serviço")
	}

	return file.ClientEmail, nil
}
