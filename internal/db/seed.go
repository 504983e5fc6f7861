package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port"
)

// SeedFile is the layout of a seed definition file (YAML, JSON or TOML).
// Funding windows are relative to the time of seeding.
type SeedFile struct {
	Campaigns []SeedCampaign `mapstructure:"campaigns"`
}

type SeedCampaign struct {
	Creator           string        `mapstructure:"creator"`
	Goal              uint64        `mapstructure:"goal"`
	FundsReceiver     string        `mapstructure:"funds_receiver"`
	StartsIn          time.Duration `mapstructure:"starts_in"`
	Duration          time.Duration `mapstructure:"duration"`
	RewardMetadata    string        `mapstructure:"reward_metadata"`
	Allocations       []uint64      `mapstructure:"allocations"`
	ApprovalAuthority string        `mapstructure:"approval_authority"`
	Backers           []SeedBacker  `mapstructure:"backers"`
}

type SeedBacker struct {
	Account string `mapstructure:"account"`
	Amount  uint64 `mapstructure:"amount"`
}

// LoadSeedFile reads seed definitions from path.
func LoadSeedFile(path string) (SeedFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return SeedFile{}, fmt.Errorf("read seed file: %w", err)
	}
	var file SeedFile
	if err := v.Unmarshal(&file); err != nil {
		return SeedFile{}, fmt.Errorf("decode seed file: %w", err)
	}
	return file, nil
}

// Seed creates the campaigns of file through svc and funds their backers.
// Backers with a zero amount are only enrolled.
func Seed(ctx context.Context, svc port.CampaignUseCase, file SeedFile, now time.Time, log *zap.Logger) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(file.Campaigns))
	for i, sc := range file.Campaigns {
		start := now.Add(sc.StartsIn)
		c, err := svc.CreateCampaign(ctx, port.CreateCampaignReq{
			Creator:           domain.Account(sc.Creator),
			Goal:              sc.Goal,
			FundsReceiver:     domain.Account(sc.FundsReceiver),
			FundStart:         start,
			FundEnd:           start.Add(sc.Duration),
			RewardMetadata:    sc.RewardMetadata,
			TotalMilestones:   uint8(len(sc.Allocations)),
			Allocations:       sc.Allocations,
			ApprovalAuthority: domain.Account(sc.ApprovalAuthority),
		})
		if err != nil {
			return ids, fmt.Errorf("campaign %d: %w", i, err)
		}
		for _, b := range sc.Backers {
			account := domain.Account(b.Account)
			if _, err = svc.Enroll(ctx, c.ID, account); err != nil {
				return ids, fmt.Errorf("campaign %d: enroll %s: %w", i, account, err)
			}
			if b.Amount == 0 {
				continue
			}
			if _, err = svc.Fund(ctx, c.ID, account, domain.Payment{Amount: b.Amount, Receiver: c.Escrow}); err != nil {
				return ids, fmt.Errorf("campaign %d: fund %s: %w", i, account, err)
			}
		}
		log.Info("seeded campaign",
			zap.String("campaign_id", c.ID.String()),
			zap.Int("backers", len(sc.Backers)),
		)
		ids = append(ids, c.ID)
	}
	return ids, nil
}
