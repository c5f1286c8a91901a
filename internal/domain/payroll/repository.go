package payroll

import (
	"context"
	"time"
)

// PayrollRunRepository defines data access for payroll runs. The
// (company_id, period_year, period_month) unique constraint makes a racing
// duplicate create fail with ErrRunExists.
type PayrollRunRepository interface {
	Create(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetByID(ctx context.Context, id string, companyID string) (PayrollRun, error)
	GetByPeriod(ctx context.Context, companyID string, year int, month time.Month) (PayrollRun, error)
	Update(ctx context.Context, run PayrollRun) error
	Delete(ctx context.Context, id string, companyID string) error
	ListByCompany(ctx context.Context, companyID string) ([]PayrollRun, error)
}

type PayrollItemRepository interface {
	Create(ctx context.Context, item PayrollItem) (PayrollItem, error)
	GetByID(ctx context.Context, id string) (PayrollItem, error)
	Update(ctx context.Context, item PayrollItem) error
	ListByRun(ctx context.Context, runID string) ([]PayrollItem, error)
	DeleteByRun(ctx context.Context, runID string) error
}
