package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lrlucasdurand-code/unify/infrastructure/database/postgres"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/sirupsen/logrus"
)

const integrationsTable = "integrations"

//go:generate mockgen -source=integration.go -destination=mocks/integration.go -package=mocks

type IntegrationRepository interface {
	ListByOrganization(ctx context.Context, orgID int) ([]*domain.Integration, error)
	Upsert(ctx context.Context, integration *domain.Integration) error
}

type integrationRepository struct {
	conn postgres.Conn
}

func NewIntegrationRepository(conn postgres.Conn) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

func (r *integrationRepository) ListByOrganization(ctx context.Context, orgID int) ([]*domain.Integration, error) {
	integrationSQL, integrationArgs, err := squirrel.
		Select("id", "organization_id", "provider", "is_enabled", "credentials", "updated_at").
		From(integrationsTable).
		Where(squirrel.Eq{"organization_id": orgID}).
		OrderBy("provider ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, integrationSQL, integrationArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var integrations []*domain.Integration
	for rows.Next() {
		var (
			integration domain.Integration
			credentials []byte
		)
		if err := rows.Scan(
			&integration.ID,
			&integration.OrganizationID,
			&integration.Provider,
			&integration.Enabled,
			&credentials,
			&integration.UpdatedAt,
		); err != nil {
			return nil, err
		}

		integration.Credentials = map[string]any{}
		if len(credentials) > 0 {
			if err := json.Unmarshal(credentials, &integration.Credentials); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"organization_id": orgID,
					"platform":        integration.Provider,
				}).Warn("Credenciais de integração ilegíveis")
			}
		}

		integrations = append(integrations, &integration)
	}

	return integrations, rows.Err()
}

func (r *integrationRepository) Upsert(ctx context.Context, integration *domain.Integration) error {
	query, err := buildIntegrationUpsert(integration)
	if err != nil {
		return err
	}

	upsertSQL, upsertArgs, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, upsertSQL, upsertArgs...)
	return err
}

func buildIntegrationUpsert(integration *domain.Integration) (squirrel.InsertBuilder, error) {
	credentials, err := json.Marshal(integration.Credentials)
	if err != nil {
		return squirrel.InsertBuilder{}, err
	}

	return squirrel.
		Insert(integrationsTable).
		Columns("organization_id", "provider", "is_enabled", "credentials", "updated_at").
		Values(integration.OrganizationID, integration.Provider, integration.Enabled, string(credentials), time.Now()).
		Suffix("ON CONFLICT (organization_id, provider) DO UPDATE SET " +
			"is_enabled = EXCLUDED.is_enabled, credentials = EXCLUDED.credentials, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar), nil
}
