package settings

import "context"

// SettingsRepository defines data access methods for configuration rows.
type SettingsRepository interface {
	// GetAll returns every setting row for the company as a key -> value map.
	// The payroll engine re-reads this fresh on every calculation; nothing is
	// cached across invocations.
	GetAll(ctx context.Context, companyID string) (map[string]string, error)

	Upsert(ctx context.Context, companyID string, key string, value string) (Setting, error)
	List(ctx context.Context, companyID string) ([]Setting, error)
}
