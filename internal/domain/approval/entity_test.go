package approval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decisionTime = time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)

func TestNewRequest_EmptyHierarchyAutoApproves(t *testing.T) {
	req := NewRequest("emp-1", KindLeave, nil, decisionTime)

	assert.Equal(t, StatusApproved, req.Status)
	assert.Nil(t, req.CurrentApprover)
	assert.True(t, req.IsTerminal())
}

func TestNewRequest_FirstApproverIsCurrent(t *testing.T) {
	req := NewRequest("emp-1", KindAttendance, []string{"mgr", "hr"}, decisionTime)

	assert.Equal(t, StatusPending, req.Status)
	require.NotNil(t, req.CurrentApprover)
	assert.Equal(t, "mgr", *req.CurrentApprover)
}

func TestNewRequest_SnapshotIsCopied(t *testing.T) {
	hierarchy := []string{"mgr", "hr"}
	req := NewRequest("emp-1", KindLeave, hierarchy, decisionTime)

	// Editing the employee's hierarchy later must not reroute the request.
	hierarchy[0] = "someone-else"

	assert.Equal(t, []string{"mgr", "hr"}, req.HierarchySnapshot)
}

func TestApplyDecision_FullChainInOrder(t *testing.T) {
	req := NewRequest("emp-1", KindAttendance, []string{"mgr", "hr"}, decisionTime)

	outcome, err := req.ApplyDecision("mgr", DecisionApproved, "ok", decisionTime)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, outcome.Status)
	assert.False(t, outcome.Finalize)
	require.NotNil(t, outcome.NextApprover)
	assert.Equal(t, "hr", *outcome.NextApprover)
	assert.Equal(t, StatusPending, req.Status)
	require.NotNil(t, req.CurrentApprover)
	assert.Equal(t, "hr", *req.CurrentApprover)

	outcome, err = req.ApplyDecision("hr", DecisionApproved, "", decisionTime)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, outcome.Status)
	assert.True(t, outcome.Finalize)
	assert.Nil(t, outcome.NextApprover)
	assert.Equal(t, StatusApproved, req.Status)
	assert.Nil(t, req.CurrentApprover)

	require.Len(t, req.Log, 2)
	assert.Equal(t, "mgr", req.Log[0].ApproverID)
	assert.Equal(t, "hr", req.Log[1].ApproverID)
}

func TestApplyDecision_FinalizeOnlyOnLastStep(t *testing.T) {
	chain := []string{"a", "b", "c", "d"}
	req := NewRequest("emp-1", KindLeave, chain, decisionTime)

	for i, approver := range chain {
		outcome, err := req.ApplyDecision(approver, DecisionApproved, "", decisionTime)
		require.NoError(t, err)
		if i < len(chain)-1 {
			assert.False(t, outcome.Finalize, "finalize fired at intermediate step %d", i)
			assert.Equal(t, StatusPending, req.Status)
		} else {
			assert.True(t, outcome.Finalize)
			assert.Equal(t, StatusApproved, req.Status)
		}
	}
	assert.Len(t, req.Log, len(chain))
}

func TestApplyDecision_RejectionIsTerminal(t *testing.T) {
	req := NewRequest("emp-1", KindLeave, []string{"mgr", "hr"}, decisionTime)

	outcome, err := req.ApplyDecision("mgr", DecisionRejected, "too long", decisionTime)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, outcome.Status)
	assert.False(t, outcome.Finalize)
	assert.Equal(t, StatusRejected, req.Status)
	assert.Nil(t, req.CurrentApprover)

	// No further step is reachable, not even for the remaining approver.
	_, err = req.ApplyDecision("hr", DecisionApproved, "", decisionTime)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestApplyDecision_OutOfOrderApproverUnauthorized(t *testing.T) {
	req := NewRequest("emp-1", KindAttendance, []string{"mgr", "hr"}, decisionTime)

	// hr appears later in the chain but may not act before mgr.
	_, err := req.ApplyDecision("hr", DecisionApproved, "", decisionTime)
	assert.ErrorIs(t, err, ErrNotCurrentApprover)

	// A stranger may never act.
	_, err = req.ApplyDecision("stranger", DecisionApproved, "", decisionTime)
	assert.ErrorIs(t, err, ErrNotCurrentApprover)

	// The request is untouched.
	assert.Equal(t, StatusPending, req.Status)
	assert.Empty(t, req.Log)
}

func TestApplyDecision_SameApproverCannotActTwice(t *testing.T) {
	req := NewRequest("emp-1", KindLeave, []string{"mgr", "hr"}, decisionTime)

	_, err := req.ApplyDecision("mgr", DecisionApproved, "", decisionTime)
	require.NoError(t, err)

	_, err = req.ApplyDecision("mgr", DecisionApproved, "", decisionTime)
	assert.ErrorIs(t, err, ErrNotCurrentApprover)
}

func TestApplyDecision_InvalidDecisionValue(t *testing.T) {
	req := NewRequest("emp-1", KindLeave, []string{"mgr"}, decisionTime)

	_, err := req.ApplyDecision("mgr", Decision("maybe"), "", decisionTime)
	assert.ErrorIs(t, err, ErrInvalidDecision)
	assert.Empty(t, req.Log)
}

func TestApplyDecision_LogRecordsCommentsAndTime(t *testing.T) {
	req := NewRequest("emp-1", KindAttendance, []string{"mgr"}, decisionTime)

	decidedAt := decisionTime.Add(2 * time.Hour)
	_, err := req.ApplyDecision("mgr", DecisionApproved, "verified on site", decidedAt)
	require.NoError(t, err)

	require.Len(t, req.Log, 1)
	assert.Equal(t, "verified on site", req.Log[0].Comments)
	assert.Equal(t, DecisionApproved, req.Log[0].Decision)
	assert.True(t, req.Log[0].DecidedAt.Equal(decidedAt))
}
