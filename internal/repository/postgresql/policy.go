package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/policy"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
)

type policyRepositoryImpl struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepositoryImpl{db: db}
}

// GetActive implements policy.PolicyRepository.
func (r *policyRepositoryImpl) GetActive(ctx context.Context, companyID string, policyType policy.PolicyType) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, company_id, type, version, is_active, config, created_at, updated_at
		FROM policies
		WHERE company_id = $1 AND type = $2 AND is_active = true
		ORDER BY version DESC
		LIMIT 1
	`

	var p policy.Policy
	err := q.QueryRow(ctx, query, companyID, policyType).Scan(
		&p.ID, &p.CompanyID, &p.Type, &p.Version, &p.IsActive, &p.Config,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrPolicyNotFound
		}
		return policy.Policy{}, err
	}
	return p, nil
}

// CreateNextVersion implements policy.PolicyRepository. Older rows of the same
// type are deactivated in the same statement batch; callers wrap this in a
// transaction when atomicity with other writes matters.
func (r *policyRepositoryImpl) CreateNextVersion(ctx context.Context, companyID string, policyType policy.PolicyType, config json.RawMessage) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	deactivate := `
		UPDATE policies
		SET is_active = false, updated_at = $3
		WHERE company_id = $1 AND type = $2 AND is_active = true
	`
	now := time.Now()
	if _, err := q.Exec(ctx, deactivate, companyID, policyType, now); err != nil {
		return policy.Policy{}, err
	}

	insert := `
		INSERT INTO policies (id, company_id, type, version, is_active, config, created_at, updated_at)
		VALUES (
			$1, $2, $3,
			(SELECT COALESCE(MAX(version), 0) + 1 FROM policies WHERE company_id = $2 AND type = $3),
			true, $4, $5, $5
		)
		RETURNING id, company_id, type, version, is_active, config, created_at, updated_at
	`

	var p policy.Policy
	err := q.QueryRow(ctx, insert, uuid.NewString(), companyID, policyType, config, now).Scan(
		&p.ID, &p.CompanyID, &p.Type, &p.Version, &p.IsActive, &p.Config,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return policy.Policy{}, err
	}
	return p, nil
}
