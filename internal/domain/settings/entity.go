package settings

import "time"

// Setting - one persisted key-value configuration row. Values are stored as
// text and interpreted by the payroll configuration resolver; anything the
// resolver does not recognize is carried but ignored.
type Setting struct {
	ID        string
	CompanyID string
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
