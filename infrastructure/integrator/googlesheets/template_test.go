package googlesheets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lrlucasdurand-code/unify/infrastructure/integrator/googlesheets/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTemplateService_CreateFromTemplate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		email   string
		setup   func(drive *mocks.MockFileCopier)
		wantErr bool
	}{
		{
			name:  "compartilha com o e-mail do cliente",
			email: "cliente@loja.com",
			setup: func(drive *mocks.MockFileCopier) {
				drive.EXPECT().CopyFile(ctx, "template-id", "Antigravity - Loja Centro", "folder-1").Return("new-sheet", nil)
				drive.EXPECT().ShareWithUser(ctx, "new-sheet", "cliente@loja.com").Return(nil)
			},
		},
		{
			name: "sem e-mail compartilha por link",
			setup: func(drive *mocks.MockFileCopier) {
				drive.EXPECT().CopyFile(ctx, "template-id", "Antigravity - Loja Centro", "folder-1").Return("new-sheet", nil)
				drive.EXPECT().ShareWithAnyone(ctx, "new-sheet").Return(errors.New("domain policy"))
			},
		},
		{
			name: "falha na cópia",
			setup: func(drive *mocks.MockFileCopier) {
				drive.EXPECT().CopyFile(ctx, "template-id", gomock.Any(), "folder-1").Return("", errors.New("quota"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			drive := mocks.NewMockFileCopier(ctrl)
			tt.setup(drive)

			sheet, err := NewTemplateService(drive, "template-id").CreateFromTemplate(ctx, "Loja Centro", tt.email, "folder-1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "new-sheet", sheet.SpreadsheetID)
			assert.Equal(t, "Antigravity - Loja Centro", sheet.Title)
			assert.Equal(t, "https://docs.google.com/spreadsheets/d/new-sheet/edit", sheet.URL)
		})
	}
}

func TestTemplateService_WithoutDrive(t *testing.T) {
	_, err := NewTemplateService(nil, "template-id").CreateFromTemplate(context.Background(), "Loja", "", "")
	assert.ErrorIs(t, err, ErrDriveUnavailable)
}

func TestServiceAccountEmail(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "sa.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"type":"service_account","client_email":"bot@proj.iam.gserviceaccount.com"}`), 0o600))

	email, err := ServiceAccountEmail(valid)
	require.NoError(t, err)
	assert.Equal(t, "bot@proj.iam.gserviceaccount.com", email)

	missing := filepath.Join(dir, "sa-missing-email.json")
	require.NoError(t, os.WriteFile(missing, []byte(`{"type":"service_account"}`), 0o600))

	_, err = ServiceAccountEmail(missing)
	assert.Error(t, err)

	_, err = ServiceAccountEmail(filepath.Join(dir, "nope.json"))
	assert.Error(t, err)
}
