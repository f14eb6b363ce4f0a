package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lrlucasdurand-code/unify/infrastructure/database/postgres"
	"github.com/lrlucasdurand-code/unify/internal/domain"
)

const (
	budgetChangesTable     = "budget_changes"
	defaultBudgetChangeCap = 100
)

//go:generate mockgen -source=budget_change.go -destination=mocks/budget_change.go -package=mocks

type BudgetChangeRepository interface {
	Save(ctx context.Context, change *domain.BudgetChange) error
	ListByOrganization(ctx context.Context, orgID int, since *time.Time, limit int) ([]*domain.BudgetChange, error)
}

type budgetChangeRepository struct {
	conn postgres.Conn
}

func NewBudgetChangeRepository(conn postgres.Conn) BudgetChangeRepository {
	return &budgetChangeRepository{
		conn: conn,
	}
}

func (r *budgetChangeRepository) Save(ctx context.Context, change *domain.BudgetChange) error {
	insertSQL, insertArgs, err := squirrel.
		Insert(budgetChangesTable).
		Columns(
			"id", "organization_id", "campaign_id", "platform_id", "platform",
			"previous_budget", "new_budget", "multiplier", "action",
			"dry_run", "success", "error_message", "created_at",
		).
		Values(
			change.ID, change.OrganizationID, change.CampaignID, change.PlatformID, change.Platform,
			change.PreviousBudget, change.NewBudget, change.Multiplier, change.Action,
			change.DryRun, change.Success, change.ErrorMessage, change.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, insertSQL, insertArgs...)
	return err
}

func (r *budgetChangeRepository) ListByOrganization(ctx context.Context, orgID int, since *time.Time, limit int) ([]*domain.BudgetChange, error) {
	listSQL, listArgs, err := buildBudgetChangeList(orgID, since, limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	changes := []*domain.BudgetChange{}
	for rows.Next() {
		var c domain.BudgetChange
		if err := rows.Scan(
			&c.ID,
			&c.OrganizationID,
			&c.CampaignID,
			&c.PlatformID,
			&c.Platform,
			&c.PreviousBudget,
			&c.NewBudget,
			&c.Multiplier,
			&c.Action,
			&c.DryRun,
			&c.Success,
			&c.ErrorMessage,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		changes = append(changes, &c)
	}

	return changes, rows.Err()
}

func buildBudgetChangeList(orgID int, since *time.Time, limit int) squirrel.SelectBuilder {
	if limit <= 0 || limit > defaultBudgetChangeCap {
		limit = defaultBudgetChangeCap
	}

	query := squirrel.
		Select(
			"id", "organization_id", "campaign_id", "platform_id", "platform",
			"previous_budget", "new_budget", "multiplier", "action",
			"dry_run", "success", "error_message", "created_at",
		).
		From(budgetChangesTable).
		Where(squirrel.Eq{"organization_id": orgID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if since != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *since})
	}

	return query
}
