package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/adset-builder-api/infrastructure/database/postgres"
	"github.com/vfg2006/adset-builder-api/internal/domain"
	"github.com/vfg2006/adset-builder-api/pkg/utils"
)

const adSetsTable = "ad_sets"

// AdSetRepository guarda o histórico dos conjuntos de anúncios criados via
// API. É um registro de auditoria local; a fonte da verdade continua sendo
// a plataforma.
type AdSetRepository interface {
	SaveAdSet(record *domain.AdSetRecord) error
	ListByAccountID(accountID string) ([]*domain.AdSetRecord, error)
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{
		conn: conn,
	}
}

func (r *adSetRepository) SaveAdSet(record *domain.AdSetRecord) error {
	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("failed to generate id: %w", err)
		}
		record.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert(adSetsTable).
		Columns("id", "external_id", "account_id", "campaign_id", "name", "optimization_goal", "billing_event", "status").
		Values(
			record.ID,
			record.ExternalID,
			record.AccountID,
			record.CampaignID,
			record.Name,
			record.OptimizationGoal,
			record.BillingEvent,
			record.Status,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *adSetRepository) ListByAccountID(accountID string) ([]*domain.AdSetRecord, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "external_id", "account_id", "campaign_id", "name", "optimization_goal", "billing_event", "status", "created_at").
		From(adSetsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AdSetRecord, 0)

	for rows.Next() {
		record := &domain.AdSetRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.ExternalID,
			&record.AccountID,
			&record.CampaignID,
			&record.Name,
			&record.OptimizationGoal,
			&record.BillingEvent,
			&record.Status,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o registro: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return records, nil
}
