package approval

import (
	"time"
)

// WorkPolicy is the per-site attendance policy an employee is assigned to.
// A submission with no policy row fails closed with ErrPolicyNotConfigured.
type WorkPolicy struct {
	ID                  string
	SiteName            string
	SiteLatitude        float64
	SiteLongitude       float64
	AllowedRadiusMeters float64

	// ClockInCutoff is a local time of day in "15:04" form; a check-in
	// strictly after it is late.
	ClockInCutoff string

	// Timezone is an IANA zone name the cutoff is evaluated in.
	Timezone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Verdict is the result of validating a submission against a WorkPolicy.
// It is a verdict, not a decision: the justification gate and the approval
// chain decide what happens with it.
type Verdict struct {
	IsLate         bool
	IsOutOfRange   bool
	DistanceMeters float64
}

// Violated reports whether any policy rule was broken.
func (v Verdict) Violated() bool {
	return v.IsLate || v.IsOutOfRange
}
