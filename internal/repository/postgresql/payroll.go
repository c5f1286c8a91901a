package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/payroll"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
)

type payrollRunRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRunRepository(db *database.DB) payroll.PayrollRunRepository {
	return &payrollRunRepositoryImpl{db: db}
}

const payrollRunColumns = `
	id, company_id, period_year, period_month, status, total_amount,
	created_at, updated_at
`

// Create implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) Create(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO payroll_runs (` + payrollRunColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + payrollRunColumns

	row := q.QueryRow(ctx, query,
		run.ID, run.CompanyID, run.PeriodYear, int(run.PeriodMonth),
		run.Status, run.TotalAmount, time.Now(),
	)

	created, err := scanPayrollRun(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return payroll.PayrollRun{}, payroll.ErrRunExists
		}
		return payroll.PayrollRun{}, err
	}
	return created, nil
}

// GetByID implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE id = $1 AND company_id = $2
	`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, err
	}
	return run, nil
}

// GetByPeriod implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) GetByPeriod(ctx context.Context, companyID string, year int, month time.Month) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE company_id = $1 AND period_year = $2 AND period_month = $3
	`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, companyID, year, int(month)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, err
	}
	return run, nil
}

// Update implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) Update(ctx context.Context, run payroll.PayrollRun) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE payroll_runs
		SET status = $3, total_amount = $4, updated_at = $5
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, run.ID, run.CompanyID, run.Status, run.TotalAmount, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrRunNotFound
	}
	return nil
}

// Delete implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM payroll_runs
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrRunNotFound
	}
	return nil
}

// ListByCompany implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE company_id = $1
		ORDER BY period_year DESC, period_month DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func scanPayrollRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	var month int
	err := row.Scan(
		&run.ID, &run.CompanyID, &run.PeriodYear, &month, &run.Status, &run.TotalAmount,
		&run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollRun{}, err
	}
	run.PeriodMonth = time.Month(month)
	return run, nil
}

type payrollItemRepositoryImpl struct {
	db *database.DB
}

func NewPayrollItemRepository(db *database.DB) payroll.PayrollItemRepository {
	return &payrollItemRepositoryImpl{db: db}
}

const payrollItemColumns = `
	id, payroll_run_id, employee_id,
	base_pay, overtime_pay, allowances, bonuses,
	transport_allowance, lunch_allowance, holiday_bonus, deductions,
	gross_pay,
	employee_health_contribution, employer_health_contribution,
	employee_employment_contribution, employer_employment_contribution,
	withholding, net_pay, breakdown,
	created_at, updated_at
`

// Create implements payroll.PayrollItemRepository.
func (r *payrollItemRepositoryImpl) Create(ctx context.Context, item payroll.PayrollItem) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO payroll_items (` + payrollItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $20)
		RETURNING ` + payrollItemColumns

	row := q.QueryRow(ctx, query,
		item.ID, item.PayrollRunID, item.EmployeeID,
		item.BasePay, item.OvertimePay, item.Allowances, item.Bonuses,
		item.TransportAllowance, item.LunchAllowance, item.HolidayBonus, item.Deductions,
		item.GrossPay,
		item.EmployeeHealthContribution, item.EmployerHealthContribution,
		item.EmployeeEmploymentContribution, item.EmployerEmploymentContribution,
		item.Withholding, item.NetPay, item.Breakdown,
		time.Now(),
	)
	return scanPayrollItem(row)
}

// GetByID implements payroll.PayrollItemRepository.
func (r *payrollItemRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payrollItemColumns + `
		FROM payroll_items
		WHERE id = $1
	`

	item, err := scanPayrollItem(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollItem{}, payroll.ErrItemNotFound
		}
		return payroll.PayrollItem{}, err
	}
	return item, nil
}

// Update implements payroll.PayrollItemRepository.
func (r *payrollItemRepositoryImpl) Update(ctx context.Context, item payroll.PayrollItem) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE payroll_items
		SET base_pay = $2, overtime_pay = $3, allowances = $4, bonuses = $5,
			transport_allowance = $6, lunch_allowance = $7, holiday_bonus = $8, deductions = $9,
			gross_pay = $10,
			employee_health_contribution = $11, employer_health_contribution = $12,
			employee_employment_contribution = $13, employer_employment_contribution = $14,
			withholding = $15, net_pay = $16, breakdown = $17,
			updated_at = $18
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		item.ID,
		item.BasePay, item.OvertimePay, item.Allowances, item.Bonuses,
		item.TransportAllowance, item.LunchAllowance, item.HolidayBonus, item.Deductions,
		item.GrossPay,
		item.EmployeeHealthContribution, item.EmployerHealthContribution,
		item.EmployeeEmploymentContribution, item.EmployerEmploymentContribution,
		item.Withholding, item.NetPay, item.Breakdown,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrItemNotFound
	}
	return nil
}

// ListByRun implements payroll.PayrollItemRepository.
func (r *payrollItemRepositoryImpl) ListByRun(ctx context.Context, runID string) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payrollItemColumns + `
		FROM payroll_items
		WHERE payroll_run_id = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []payroll.PayrollItem
	for rows.Next() {
		item, err := scanPayrollItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteByRun implements payroll.PayrollItemRepository.
func (r *payrollItemRepositoryImpl) DeleteByRun(ctx context.Context, runID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM payroll_items
		WHERE payroll_run_id = $1
	`

	_, err := q.Exec(ctx, query, runID)
	return err
}

func scanPayrollItem(row pgx.Row) (payroll.PayrollItem, error) {
	var item payroll.PayrollItem
	var breakdownJSON []byte
	err := row.Scan(
		&item.ID, &item.PayrollRunID, &item.EmployeeID,
		&item.BasePay, &item.OvertimePay, &item.Allowances, &item.Bonuses,
		&item.TransportAllowance, &item.LunchAllowance, &item.HolidayBonus, &item.Deductions,
		&item.GrossPay,
		&item.EmployeeHealthContribution, &item.EmployerHealthContribution,
		&item.EmployeeEmploymentContribution, &item.EmployerEmploymentContribution,
		&item.Withholding, &item.NetPay, &breakdownJSON,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollItem{}, err
	}
	if breakdownJSON != nil {
		if err := item.Breakdown.Scan(breakdownJSON); err != nil {
			return payroll.PayrollItem{}, err
		}
	}
	return item, nil
}
