package postgresql

import (
	"context"
	"fmt"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workPolicyRepository struct {
	db *database.DB
}

// GetByEmployeeID implements approval.WorkPolicyRepository. An employee
// with no policy assignment fails closed.
func (w *workPolicyRepository) GetByEmployeeID(ctx context.Context, employeeID string) (approval.WorkPolicy, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT p.id, p.site_name, p.site_latitude, p.site_longitude,
			   p.allowed_radius_meters, p.clock_in_cutoff, p.timezone,
			   p.created_at, p.updated_at
		FROM work_policies p
		JOIN employee_policies ep ON ep.policy_id = p.id
		WHERE ep.employee_id = $1
	`

	var policy approval.WorkPolicy
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&policy.ID, &policy.SiteName, &policy.SiteLatitude, &policy.SiteLongitude,
		&policy.AllowedRadiusMeters, &policy.ClockInCutoff, &policy.Timezone,
		&policy.CreatedAt, &policy.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return approval.WorkPolicy{}, approval.ErrPolicyNotConfigured
		}
		return approval.WorkPolicy{}, fmt.Errorf("failed to get work policy: %w", err)
	}

	return policy, nil
}

func NewWorkPolicyRepository(db *database.DB) approval.WorkPolicyRepository {
	return &workPolicyRepository{db: db}
}
