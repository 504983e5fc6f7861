package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port"
)

const tracerName = "milestone-escrow/usecase"

// maxEventPage bounds a single ListEvents page.
const maxEventPage = 1000

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// CampaignUseCase provides business logic for the escrow. It loads the
// campaign aggregate under lock, lets it apply the operation and persists
// the result together with the journal entries in one unit of work.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	tx       port.Transactor
	policy   domain.Policy
	observer port.Observer
	log      *zap.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// Option customizes a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithClock replaces the wall clock used for funding window checks.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

// WithObserver registers an observer for committed and rejected operations.
func WithObserver(o port.Observer) Option {
	return func(u *CampaignUseCase) { u.observer = o }
}

// NewCampaignUseCase creates a new usecase on top of repo. tx must run its
// units against the same storage as repo.
func NewCampaignUseCase(repo port.CampaignRepository, tx port.Transactor, policy domain.Policy, log *zap.Logger, opts ...Option) *CampaignUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	u := &CampaignUseCase{
		repo:     repo,
		tx:       tx,
		policy:   policy,
		observer: port.NopObserver{},
		log:      log,
		tracer:   otel.Tracer(tracerName),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Policy returns the rules the usecase enforces.
func (u *CampaignUseCase) Policy() domain.Policy {
	return u.policy
}

// CreateCampaign validates the request and stores a new campaign.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	id := uuid.New()
	ctx, span := u.start(ctx, "create", id)
	defer span.End()

	c, err := domain.NewCampaign(id, req.Config(), u.policy, u.now())
	if err != nil {
		return nil, u.fail(span, "create", id, err)
	}
	events := c.TakeEvents()
	err = u.tx.Transact(ctx, func(ctx context.Context) error {
		if err := u.repo.InsertCampaign(ctx, c); err != nil {
			return fmt.Errorf("insert campaign: %w", err)
		}
		if err := u.repo.AppendEvents(ctx, events); err != nil {
			return fmt.Errorf("append events: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, u.fail(span, "create", id, err)
	}

	u.observer.Committed(events)
	u.log.Info("campaign created",
		zap.String("campaign_id", id.String()),
		zap.String("creator", c.Config.Creator.String()),
		zap.Uint64("goal", c.Config.Goal),
		zap.Uint8("milestones", c.Config.TotalMilestones),
	)
	return c, nil
}

// GetCampaign returns the campaign together with its release ledger.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*port.CampaignView, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	releases, err := u.repo.ListReleases(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	return &port.CampaignView{Campaign: c, Releases: releases}, nil
}

// Enroll opens an empty ledger entry for account.
func (u *CampaignUseCase) Enroll(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.BackerRecord, error) {
	var rec *domain.BackerRecord
	_, err := u.mutate(ctx, "enroll", id, func(ctx context.Context, c *domain.Campaign, now time.Time) error {
		existing, err := u.repo.GetBacker(ctx, id, account)
		if err != nil {
			return fmt.Errorf("get backer: %w", err)
		}
		rec, err = c.Enroll(account, existing != nil, now)
		if err != nil {
			return err
		}
		return u.repo.InsertBacker(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Fund books the contribution of account. The backer ledger is summed again
// inside the unit and the unit aborts if it disagrees with the campaign.
func (u *CampaignUseCase) Fund(ctx context.Context, id uuid.UUID, account domain.Account, pay domain.Payment) (*domain.BackerRecord, error) {
	var rec *domain.BackerRecord
	_, err := u.mutate(ctx, "fund", id, func(ctx context.Context, c *domain.Campaign, now time.Time) error {
		var err error
		rec, err = u.repo.GetBacker(ctx, id, account)
		if err != nil {
			return fmt.Errorf("get backer: %w", err)
		}
		if err = c.Fund(rec, pay, u.policy, now); err != nil {
			return err
		}
		if err = u.repo.UpdateBacker(ctx, rec); err != nil {
			return fmt.Errorf("update backer: %w", err)
		}
		totals, err := u.repo.SumBacked(ctx, id)
		if err != nil {
			return fmt.Errorf("sum backed: %w", err)
		}
		return c.CheckLedger(totals)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// CloseFunding ends the funding phase.
func (u *CampaignUseCase) CloseFunding(ctx context.Context, id uuid.UUID, actor domain.Account) (*domain.Campaign, error) {
	return u.mutate(ctx, "close_funding", id, func(_ context.Context, c *domain.Campaign, now time.Time) error {
		return c.CloseFunding(actor, u.policy, now)
	})
}

// RequestValidation opens validation of the next milestone.
func (u *CampaignUseCase) RequestValidation(ctx context.Context, id uuid.UUID, actor domain.Account) (*domain.Campaign, error) {
	return u.mutate(ctx, "request_validation", id, func(_ context.Context, c *domain.Campaign, now time.Time) error {
		return c.RequestValidation(actor, u.policy, now)
	})
}

// RecordDecision applies the approval authority's verdict and books the
// release of an approved milestone.
func (u *CampaignUseCase) RecordDecision(ctx context.Context, id uuid.UUID, actor domain.Account, approved bool) (*port.DecisionResult, error) {
	var release *domain.Release
	c, err := u.mutate(ctx, "record_decision", id, func(ctx context.Context, c *domain.Campaign, now time.Time) error {
		var err error
		release, err = c.RecordDecision(actor, approved, now)
		if err != nil {
			return err
		}
		if release == nil {
			return nil
		}
		if err = u.repo.InsertRelease(ctx, release); err != nil {
			return fmt.Errorf("insert release: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if release != nil {
		u.log.Info("milestone funds released",
			zap.String("campaign_id", id.String()),
			zap.Uint8("milestone", release.Milestone),
			zap.Uint64("amount", release.Amount),
			zap.String("receiver", release.Receiver.String()),
		)
	}
	return &port.DecisionResult{Campaign: c, Release: release}, nil
}

// GetBacker returns the ledger entry of account.
func (u *CampaignUseCase) GetBacker(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.BackerRecord, error) {
	if _, err := u.load(ctx, id); err != nil {
		return nil, err
	}
	rec, err := u.repo.GetBacker(ctx, id, account)
	if err != nil {
		return nil, fmt.Errorf("get backer: %w", err)
	}
	if rec == nil {
		return nil, domain.ErrNotEnrolled
	}
	return rec, nil
}

// ListBackers returns the backer ledger of a campaign.
func (u *CampaignUseCase) ListBackers(ctx context.Context, id uuid.UUID) ([]domain.BackerRecord, error) {
	if _, err := u.load(ctx, id); err != nil {
		return nil, err
	}
	backers, err := u.repo.ListBackers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list backers: %w", err)
	}
	return backers, nil
}

// RewardEligibility answers whether account may claim the reward. Unknown
// accounts are simply not eligible.
func (u *CampaignUseCase) RewardEligibility(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.Eligibility, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	rec, err := u.repo.GetBacker(ctx, id, account)
	if err != nil {
		return nil, fmt.Errorf("get backer: %w", err)
	}
	eligibility := c.RewardEligibility(rec, u.policy)
	return &eligibility, nil
}

// ClaimReward records the reward claim of an eligible backer.
func (u *CampaignUseCase) ClaimReward(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.RewardClaim, error) {
	var claim *domain.RewardClaim
	_, err := u.mutate(ctx, "claim_reward", id, func(ctx context.Context, c *domain.Campaign, now time.Time) error {
		rec, err := u.repo.GetBacker(ctx, id, account)
		if err != nil {
			return fmt.Errorf("get backer: %w", err)
		}
		claimed, err := u.repo.GetRewardClaim(ctx, id, account)
		if err != nil {
			return fmt.Errorf("get reward claim: %w", err)
		}
		claim, err = c.ClaimReward(rec, claimed, u.policy, now)
		if err != nil {
			return err
		}
		if err = u.repo.InsertRewardClaim(ctx, claim); err != nil {
			return fmt.Errorf("insert reward claim: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// ClaimRefund pays account back after an unsuccessful ending.
func (u *CampaignUseCase) ClaimRefund(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.Refund, error) {
	var refund *domain.Refund
	_, err := u.mutate(ctx, "claim_refund", id, func(ctx context.Context, c *domain.Campaign, now time.Time) error {
		rec, err := u.repo.GetBacker(ctx, id, account)
		if err != nil {
			return fmt.Errorf("get backer: %w", err)
		}
		refunded, err := u.repo.GetRefund(ctx, id, account)
		if err != nil {
			return fmt.Errorf("get refund: %w", err)
		}
		refund, err = c.ClaimRefund(rec, refunded, now)
		if err != nil {
			return err
		}
		if err = u.repo.InsertRefund(ctx, refund); err != nil {
			return fmt.Errorf("insert refund: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}

// ListEvents pages through the campaign journal.
func (u *CampaignUseCase) ListEvents(ctx context.Context, id uuid.UUID, afterSeq uint64, limit int) ([]domain.Event, error) {
	if _, err := u.load(ctx, id); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = port.DefaultEventPageSize
	case limit > maxEventPage:
		limit = maxEventPage
	}
	events, err := u.repo.ListEvents(ctx, id, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// mutate runs fn against the locked campaign and persists the campaign and
// its new events in the same unit of work.
func (u *CampaignUseCase) mutate(
	ctx context.Context,
	op string,
	id uuid.UUID,
	fn func(ctx context.Context, c *domain.Campaign, now time.Time) error,
) (*domain.Campaign, error) {
	ctx, span := u.start(ctx, op, id)
	defer span.End()

	var (
		out    *domain.Campaign
		events []domain.Event
	)
	err := u.tx.Transact(ctx, func(ctx context.Context) error {
		c, err := u.repo.LockCampaign(ctx, id)
		if err != nil {
			return fmt.Errorf("lock campaign: %w", err)
		}
		if c == nil {
			return domain.ErrCampaignNotFound
		}
		if err = fn(ctx, c, u.now()); err != nil {
			return err
		}
		events = c.TakeEvents()
		if err = u.repo.UpdateCampaign(ctx, c); err != nil {
			return fmt.Errorf("update campaign: %w", err)
		}
		if err = u.repo.AppendEvents(ctx, events); err != nil {
			return fmt.Errorf("append events: %w", err)
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, u.fail(span, op, id, err)
	}

	span.SetAttributes(attribute.String("campaign.phase", out.State.Phase.String()))
	u.observer.Committed(events)
	u.log.Debug("campaign updated",
		zap.String("op", op),
		zap.String("campaign_id", id.String()),
		zap.Stringer("phase", out.State.Phase),
		zap.Uint64("event_seq", out.EventSeq),
	)
	return out, nil
}

func (u *CampaignUseCase) load(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

func (u *CampaignUseCase) start(ctx context.Context, op string, id uuid.UUID) (context.Context, trace.Span) {
	return u.tracer.Start(ctx, "campaign."+op, trace.WithAttributes(
		attribute.String("campaign.id", id.String()),
	))
}

// fail records err on the span and reports it. Domain rejections are
// expected traffic and logged at debug level.
func (u *CampaignUseCase) fail(span trace.Span, op string, id uuid.UUID, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var derr *domain.Error
	if errors.As(err, &derr) {
		u.observer.Rejected(op, derr.Code)
		u.log.Debug("campaign operation rejected",
			zap.String("op", op),
			zap.String("campaign_id", id.String()),
			zap.String("code", string(derr.Code)),
			zap.Error(err),
		)
		return err
	}
	u.log.Error("campaign operation failed",
		zap.String("op", op),
		zap.String("campaign_id", id.String()),
		zap.Error(err),
	)
	return err
}
