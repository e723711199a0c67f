package approval

import (
	"fmt"
	"time"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/pkg/geo"
)

// DistanceUnknown is reported when a submission carries no coordinates. The
// submission still fails closed as out-of-range.
const DistanceUnknown = -1

// EvaluateSubmission checks a submission timestamp and location against a
// work policy. It is a pure function: no I/O, deterministic given its
// inputs. The returned verdict states what was violated; it does not decide
// whether the submission is admitted.
func EvaluateSubmission(submittedAt time.Time, latitude, longitude *float64, policy approval.WorkPolicy) (approval.Verdict, error) {
	cutoff, err := time.Parse("15:04", policy.ClockInCutoff)
	if err != nil {
		return approval.Verdict{}, fmt.Errorf("work policy %s has invalid clock-in cutoff %q: %w", policy.ID, policy.ClockInCutoff, err)
	}

	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		loc = time.UTC
	}

	local := submittedAt.In(loc)
	cutoffToday := time.Date(
		local.Year(), local.Month(), local.Day(),
		cutoff.Hour(), cutoff.Minute(), 0, 0,
		loc,
	)

	verdict := approval.Verdict{
		// Strictly after the cutoff; checking in exactly at the cutoff is
		// on time.
		IsLate: local.After(cutoffToday),
	}

	if latitude == nil || longitude == nil {
		// Fail closed: a submission that hides its location never passes
		// the range check silently.
		verdict.IsOutOfRange = true
		verdict.DistanceMeters = DistanceUnknown
		return verdict, nil
	}

	verdict.DistanceMeters = geo.HaversineDistance(
		*latitude, *longitude,
		policy.SiteLatitude, policy.SiteLongitude,
	)
	verdict.IsOutOfRange = verdict.DistanceMeters > policy.AllowedRadiusMeters

	return verdict, nil
}
