package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lrlucasdurand-code/unify/infrastructure/database/postgres"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const organizationsTable = "organizations"

var organizationColumns = []string{
	"id", "name", "google_sheet_id", "drive_folder_id", "plan", "budget_rules", "bot_settings", "created_at", "updated_at",
}

//go:generate mockgen -source=organization.go -destination=mocks/organization.go -package=mocks

type OrganizationRepository interface {
	GetByID(ctx context.Context, orgID int) (*domain.Organization, error)
	List(ctx context.Context) ([]*domain.Organization, error)
	ListSummaries(ctx context.Context) ([]*domain.OrganizationSummary, error)
	Update(ctx context.Context, org *domain.Organization) error
	UpdatePlan(ctx context.Context, orgID int, plan domain.Plan) error
	CountByPlan(ctx context.Context) (map[domain.Plan]int, error)
}

type organizationRepository struct {
	conn postgres.Conn
}

func NewOrganizationRepository(conn postgres.Conn) OrganizationRepository {
	return &organizationRepository{
		conn: conn,
	}
}

func (r *organizationRepository) GetByID(ctx context.Context, orgID int) (*domain.Organization, error) {
	orgSQL, orgArgs, err := squirrel.
		Select(organizationColumns...).
		From(organizationsTable).
		Where(squirrel.Eq{"id": orgID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	org, err := r.deserializeOrganization(r.conn.QueryRowContext(ctx, orgSQL, orgArgs...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return org, err
}

func (r *organizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	orgSQL, orgArgs, err := squirrel.
		Select(organizationColumns...).
		From(organizationsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, orgSQL, orgArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*domain.Organization
	for rows.Next() {
		org, err := r.deserializeOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *organizationRepository) deserializeOrganization(row scanner) (*domain.Organization, error) {
	var (
		org         domain.Organization
		rulesRaw    []byte
		settingsRaw []byte
	)

	if err := row.Scan(
		&org.ID,
		&org.Name,
		&org.GoogleSheetID,
		&org.DriveFolderID,
		&org.Plan,
		&rulesRaw,
		&settingsRaw,
		&org.CreatedAt,
		&org.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(rulesRaw) > 0 {
		rules := domain.DefaultBudgetRules()
		if err := json.Unmarshal(rulesRaw, &rules); err != nil {
			logrus.WithError(err).WithField("organization_id", org.ID).Warn("budget_rules inválido, usando padrão")
		} else {
			org.BudgetRules = &rules
		}
	}

	if len(settingsRaw) > 0 {
		settings := domain.DefaultBotSettings()
		if err := json.Unmarshal(settingsRaw, &settings); err != nil {
			logrus.WithError(err).WithField("organization_id", org.ID).Warn("bot_settings inválido, usando padrão")
		} else {
			org.BotSettings = &settings
		}
	}

	return &org, nil
}

// ListSummaries monta a visão administrativa: e-mail do primeiro usuário e total de usuários
func (r *organizationRepository) ListSummaries(ctx context.Context) ([]*domain.OrganizationSummary, error) {
	summarySQL, summaryArgs, err := buildSummariesQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, summarySQL, summaryArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar organizações: %w", err)
	}
	defer rows.Close()

	var summaries []*domain.OrganizationSummary
	for rows.Next() {
		var s domain.OrganizationSummary
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Plan,
			&s.GoogleSheetID,
			&s.DriveFolderID,
			&s.AdminEmail,
			&s.UserCount,
		); err != nil {
			return nil, err
		}
		s.Status = "active"
		summaries = append(summaries, &s)
	}

	return summaries, rows.Err()
}

func buildSummariesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"o.id", "o.name", "o.plan", "o.google_sheet_id", "o.drive_folder_id",
			"(SELECT u.email FROM users u WHERE u.organization_id = o.id ORDER BY u.id ASC LIMIT 1)",
			"(SELECT COUNT(*) FROM users u WHERE u.organization_id = o.id)",
		).
		From(organizationsTable + " o").
		OrderBy("o.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *organizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	query, err := buildOrganizationUpdate(org)
	if err != nil {
		return err
	}

	orgSQL, orgArgs, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, orgSQL, orgArgs...)
	return err
}

func buildOrganizationUpdate(org *domain.Organization) (squirrel.UpdateBuilder, error) {
	query := squirrel.
		Update(organizationsTable).
		Set("google_sheet_id", org.GoogleSheetID).
		Set("drive_folder_id", org.DriveFolderID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": org.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if org.BudgetRules != nil {
		raw, err := json.Marshal(org.BudgetRules)
		if err != nil {
			return query, err
		}
		query = query.Set("budget_rules", string(raw))
	}

	if org.BotSettings != nil {
		raw, err := json.Marshal(org.BotSettings)
		if err != nil {
			return query, err
		}
		query = query.Set("bot_settings", string(raw))
	}

	return query, nil
}

func (r *organizationRepository) UpdatePlan(ctx context.Context, orgID int, plan domain.Plan) error {
	orgSQL, orgArgs, err := squirrel.
		Update(organizationsTable).
		Set("plan", plan).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": orgID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, orgSQL, orgArgs...)
	return err
}

func (r *organizationRepository) CountByPlan(ctx context.Context) (map[domain.Plan]int, error) {
	countSQL, countArgs, err := squirrel.
		Select("plan", "COUNT(*)").
		From(organizationsTable).
		GroupBy("plan").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, countSQL, countArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Plan]int)
	for rows.Next() {
		var (
			plan  domain.Plan
			total int
		)
		if err := rows.Scan(&plan, &total); err != nil {
			return nil, err
		}
		counts[plan] = total
	}

	return counts, rows.Err()
}
