package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/settings"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetAll(ctx context.Context, companyID string) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT key, value
		FROM payroll_settings
		WHERE company_id = $1
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		result[key] = value
	}

	return result, rows.Err()
}

func (r *settingsRepository) Upsert(ctx context.Context, companyID string, key string, value string) (settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (id, company_id, key, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		RETURNING id, company_id, key, value, created_at, updated_at
	`

	var s settings.Setting
	err := q.QueryRow(ctx, query, uuid.New().String(), companyID, key, value).Scan(
		&s.ID, &s.CompanyID, &s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return settings.Setting{}, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return s, nil
}

func (r *settingsRepository) List(ctx context.Context, companyID string) ([]settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, key, value, created_at, updated_at
		FROM payroll_settings
		WHERE company_id = $1
		ORDER BY key
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var result []settings.Setting
	for rows.Next() {
		var s settings.Setting
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		result = append(result, s)
	}

	return result, rows.Err()
}
