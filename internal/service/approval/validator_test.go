package approval

import (
	"testing"
	"time"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() approval.WorkPolicy {
	return approval.WorkPolicy{
		ID:                  "policy-1",
		SiteName:            "Jakarta HQ",
		SiteLatitude:        -6.200000,
		SiteLongitude:       106.816666,
		AllowedRadiusMeters: 250,
		ClockInCutoff:       "09:00",
		Timezone:            "Asia/Jakarta",
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestEvaluateSubmission_OnTimeInRange(t *testing.T) {
	policy := testPolicy()
	// 08:30 local (Asia/Jakarta is UTC+7), at the site itself
	submittedAt := time.Date(2026, 3, 2, 1, 30, 0, 0, time.UTC)

	verdict, err := EvaluateSubmission(submittedAt, floatPtr(policy.SiteLatitude), floatPtr(policy.SiteLongitude), policy)

	require.NoError(t, err)
	assert.False(t, verdict.IsLate)
	assert.False(t, verdict.IsOutOfRange)
	assert.False(t, verdict.Violated())
	assert.InDelta(t, 0, verdict.DistanceMeters, 0.01)
}

func TestEvaluateSubmission_ExactlyAtCutoffIsOnTime(t *testing.T) {
	policy := testPolicy()
	// 09:00:00 local, on the second
	submittedAt := time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC)

	verdict, err := EvaluateSubmission(submittedAt, floatPtr(policy.SiteLatitude), floatPtr(policy.SiteLongitude), policy)

	require.NoError(t, err)
	assert.False(t, verdict.IsLate)
}

func TestEvaluateSubmission_AfterCutoffIsLate(t *testing.T) {
	policy := testPolicy()
	// 09:00:01 local
	submittedAt := time.Date(2026, 3, 2, 2, 0, 1, 0, time.UTC)

	verdict, err := EvaluateSubmission(submittedAt, floatPtr(policy.SiteLatitude), floatPtr(policy.SiteLongitude), policy)

	require.NoError(t, err)
	assert.True(t, verdict.IsLate)
	assert.False(t, verdict.IsOutOfRange)
	assert.True(t, verdict.Violated())
}

func TestEvaluateSubmission_OutsideRadius(t *testing.T) {
	policy := testPolicy()
	submittedAt := time.Date(2026, 3, 2, 1, 30, 0, 0, time.UTC)
	// Roughly 5km north of the site
	lat := policy.SiteLatitude + 0.045

	verdict, err := EvaluateSubmission(submittedAt, floatPtr(lat), floatPtr(policy.SiteLongitude), policy)

	require.NoError(t, err)
	assert.False(t, verdict.IsLate)
	assert.True(t, verdict.IsOutOfRange)
	assert.Greater(t, verdict.DistanceMeters, policy.AllowedRadiusMeters)
}

func TestEvaluateSubmission_MissingCoordinatesFailsClosed(t *testing.T) {
	policy := testPolicy()
	submittedAt := time.Date(2026, 3, 2, 1, 30, 0, 0, time.UTC)

	verdict, err := EvaluateSubmission(submittedAt, nil, nil, policy)

	require.NoError(t, err)
	assert.True(t, verdict.IsOutOfRange)
	assert.Equal(t, float64(DistanceUnknown), verdict.DistanceMeters)
	assert.True(t, verdict.Violated())
}

func TestEvaluateSubmission_LateAndOutOfRange(t *testing.T) {
	policy := testPolicy()
	// 10:15 local, 5km away
	submittedAt := time.Date(2026, 3, 2, 3, 15, 0, 0, time.UTC)
	lat := policy.SiteLatitude + 0.045

	verdict, err := EvaluateSubmission(submittedAt, floatPtr(lat), floatPtr(policy.SiteLongitude), policy)

	require.NoError(t, err)
	assert.True(t, verdict.IsLate)
	assert.True(t, verdict.IsOutOfRange)
}

func TestEvaluateSubmission_InvalidCutoff(t *testing.T) {
	policy := testPolicy()
	policy.ClockInCutoff = "9 o'clock"
	submittedAt := time.Date(2026, 3, 2, 1, 30, 0, 0, time.UTC)

	_, err := EvaluateSubmission(submittedAt, floatPtr(policy.SiteLatitude), floatPtr(policy.SiteLongitude), policy)

	assert.Error(t, err)
}

func TestEvaluateSubmission_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	policy := testPolicy()
	policy.Timezone = "Mars/Olympus_Mons"
	// 08:30 UTC is before the 09:00 cutoff read in UTC
	submittedAt := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

	verdict, err := EvaluateSubmission(submittedAt, floatPtr(policy.SiteLatitude), floatPtr(policy.SiteLongitude), policy)

	require.NoError(t, err)
	assert.False(t, verdict.IsLate)
}
