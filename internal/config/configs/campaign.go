package configs

import "milestone-escrow/internal/core/domain"

// Campaign holds the deployment-wide campaign rules.
type Campaign struct {
	MinContribution          uint64 `env:"MIN_CONTRIBUTION" envDefault:"10"`
	EnforceAllocationSum     bool   `env:"ENFORCE_ALLOCATION_SUM" envDefault:"true"`
	EnforceFundingWindow     bool   `env:"ENFORCE_FUNDING_WINDOW" envDefault:"true"`
	AllowEarlyClose          bool   `env:"ALLOW_EARLY_CLOSE" envDefault:"true"`
	CreatorOnlyTransitions   bool   `env:"CREATOR_ONLY_TRANSITIONS" envDefault:"false"`
	RewardMilestoneThreshold uint8  `env:"REWARD_MILESTONE_THRESHOLD" envDefault:"1"`
}

// Policy converts the section into domain rules.
func (c Campaign) Policy() domain.Policy {
	return domain.Policy{
		MinContribution:          c.MinContribution,
		EnforceAllocationSum:     c.EnforceAllocationSum,
		EnforceFundingWindow:     c.EnforceFundingWindow,
		AllowEarlyClose:          c.AllowEarlyClose,
		CreatorOnlyTransitions:   c.CreatorOnlyTransitions,
		RewardMilestoneThreshold: c.RewardMilestoneThreshold,
	}
}
