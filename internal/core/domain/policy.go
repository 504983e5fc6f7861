package domain

// DefaultMinContribution is the smallest accepted contribution.
const DefaultMinContribution uint64 = 10

// Policy holds the deployment-wide rules left open by the campaign model.
type Policy struct {
	// MinContribution is the smallest amount fund accepts.
	MinContribution uint64
	// EnforceAllocationSum rejects schedules whose allocations exceed the goal.
	EnforceAllocationSum bool
	// EnforceFundingWindow rejects contributions outside [FundStart, FundEnd].
	EnforceFundingWindow bool
	// AllowEarlyClose lets close funding run before FundEnd once the goal is met.
	AllowEarlyClose bool
	// CreatorOnlyTransitions restricts close funding and validation requests
	// to the campaign creator.
	CreatorOnlyTransitions bool
	// RewardMilestoneThreshold is how many validated milestones make backers
	// reward eligible. Zero is treated as one and values above the campaign's
	// milestone count are capped at it.
	RewardMilestoneThreshold uint8
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		MinContribution:          DefaultMinContribution,
		EnforceAllocationSum:     true,
		EnforceFundingWindow:     true,
		AllowEarlyClose:          true,
		CreatorOnlyTransitions:   false,
		RewardMilestoneThreshold: 1,
	}
}

// rewardThreshold is capped at total so a completed campaign always
// qualifies.
func (p Policy) rewardThreshold(total uint8) int {
	threshold := max(p.RewardMilestoneThreshold, 1)
	return int(min(threshold, total))
}
