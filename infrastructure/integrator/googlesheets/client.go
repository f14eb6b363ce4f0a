package googlesheets

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// ValuesReader lê um intervalo de uma planilha como texto formatado
type ValuesReader interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// FileCopier copia arquivos no Drive e gerencia permissões
type FileCopier interface {
	CopyFile(ctx context.Context, fileID, name, parentID string) (string, error)
	ShareWithUser(ctx context.Context, fileID, email string) error
	ShareWithAnyone(ctx context.Context, fileID string) error
}

// Client fala com as APIs do Sheets e do Drive usando a conta de serviço
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service
}

func NewClient(ctx context.Context, credentialsPath string) (*Client, error) {
	opts := []option.ClientOption{
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveScope, sheets.SpreadsheetsScope),
	}

	sheetsService, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Google Sheets")
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Google Drive")
	}

	return &Client{
		sheets: sheetsService,
		drive:  driveService,
	}, nil
}

func (c *Client) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler intervalo %s", readRange)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell != nil {
				cells[i] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

func (c *Client) CopyFile(ctx context.Context, fileID, name, parentID string) (string, error) {
	metadata := &drive.File{Name: name}
	if parentID != "" {
		metadata.Parents = []string{parentID}
	}

	file, err := c.drive.Files.Copy(fileID, metadata).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return "", errors.Wrap(err, "erro ao copiar modelo")
	}

	return file.Id, nil
}

func (c *Client) ShareWithUser(ctx context.Context, fileID, email string) error {
	_, err := c.drive.Permissions.Create(fileID, &drive.Permission{
		Type:         "user",
		Role:         "writer",
		EmailAddress: email,
	}).SendNotificationEmail(true).SupportsAllDrives(true).Context(ctx).Do()

	return errors.Wrapf(err, "erro ao compartilhar com %s", email)
}

func (c *Client) ShareWithAnyone(ctx context.Context, fileID string) error {
	_, err := c.drive.Permissions.Create(fileID, &drive.Permission{
		Type: "anyone",
		Role: "writer",
	}).SupportsAllDrives(true).Context(ctx).Do()

	return errors.Wrap(err, "erro ao compartilhar publicamente")
}
