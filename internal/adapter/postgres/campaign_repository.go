package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port"
)

var (
	_ port.CampaignRepository = (*CampaignRepository)(nil)
	_ port.Transactor         = (*CampaignRepository)(nil)
)

const uniqueViolation = "23505"

type txKey struct{}

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CampaignRepository implements port.CampaignRepository and port.Transactor
// using pgxpool for PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Transact runs fn in a READ COMMITTED transaction. Campaign rows are locked
// explicitly with LockCampaign, so concurrent units on one campaign queue up
// instead of failing with serialization errors.
func (r *CampaignRepository) Transact(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, tx))
}

func (r *CampaignRepository) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.pool
}

const campaignColumns = `id, escrow, creator, goal, funds_receiver, fund_start_date, fund_end_date,
    total_milestones, allocations, reward_metadata, approval_authority, phase, collected_funds,
    total_backers, reached_milestone, released_funds, end_reason, event_seq, created_at, updated_at`

// InsertCampaign stores a new campaign.
func (r *CampaignRepository) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	allocations := make([]int64, len(c.Config.Allocations))
	for i, a := range c.Config.Allocations {
		allocations[i] = int64(a)
	}
	_, err := r.q(ctx).Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`,
		c.ID,
		string(c.Escrow),
		string(c.Config.Creator),
		int64(c.Config.Goal),
		string(c.Config.FundsReceiver),
		c.Config.FundStart,
		c.Config.FundEnd,
		int16(c.Config.TotalMilestones),
		allocations,
		c.Config.RewardMetadata,
		string(c.Config.ApprovalAuthority),
		int16(c.State.Phase),
		int64(c.State.CollectedFunds),
		int64(c.State.TotalBackers),
		reachedParam(c.State.ReachedMilestone),
		int64(c.State.ReleasedFunds),
		int16(c.State.EndReason),
		int64(c.EventSeq),
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.q(ctx).QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

// LockCampaign selects the campaign row FOR UPDATE.
func (r *CampaignRepository) LockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return nil, errors.New("lock campaign outside of a transaction")
	}
	row := tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id)
	return scanCampaign(row)
}

// UpdateCampaign writes back the mutable state.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.q(ctx).Exec(ctx, `UPDATE campaigns SET
    phase = $2, collected_funds = $3, total_backers = $4, reached_milestone = $5,
    released_funds = $6, end_reason = $7, event_seq = $8, updated_at = $9
WHERE id = $1`,
		c.ID,
		int16(c.State.Phase),
		int64(c.State.CollectedFunds),
		int64(c.State.TotalBackers),
		reachedParam(c.State.ReachedMilestone),
		int64(c.State.ReleasedFunds),
		int16(c.State.EndReason),
		int64(c.EventSeq),
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// GetBacker returns the ledger entry of account.
func (r *CampaignRepository) GetBacker(ctx context.Context, campaignID uuid.UUID, account domain.Account) (*domain.BackerRecord, error) {
	rows, err := r.q(ctx).Query(ctx, `SELECT campaign_id, account, amount_backed, enrolled_at, funded_at
FROM backers WHERE campaign_id = $1 AND account = $2`, campaignID, string(account))
	if err != nil {
		return nil, err
	}
	rec, err := pgx.CollectOneRow(rows, scanBacker)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// InsertBacker creates a zero-valued ledger entry.
func (r *CampaignRepository) InsertBacker(ctx context.Context, rec *domain.BackerRecord) error {
	_, err := r.q(ctx).Exec(ctx, `INSERT INTO backers (campaign_id, account, amount_backed, enrolled_at, funded_at)
VALUES ($1,$2,$3,$4,$5)`, rec.CampaignID, string(rec.Account), int64(rec.AmountBacked), rec.EnrolledAt, rec.FundedAt)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyEnrolled.Wrap(err)
	}
	return err
}

// UpdateBacker persists the funded amount of an entry.
func (r *CampaignRepository) UpdateBacker(ctx context.Context, rec *domain.BackerRecord) error {
	tag, err := r.q(ctx).Exec(ctx, `UPDATE backers SET amount_backed = $3, funded_at = $4
WHERE campaign_id = $1 AND account = $2`, rec.CampaignID, string(rec.Account), int64(rec.AmountBacked), rec.FundedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotEnrolled
	}
	return nil
}

// ListBackers returns the ledger ordered by enrollment.
func (r *CampaignRepository) ListBackers(ctx context.Context, campaignID uuid.UUID) ([]domain.BackerRecord, error) {
	rows, err := r.q(ctx).Query(ctx, `SELECT campaign_id, account, amount_backed, enrolled_at, funded_at
FROM backers WHERE campaign_id = $1 ORDER BY enrolled_at, account`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBacker)
}

// SumBacked recomputes the ledger totals.
func (r *CampaignRepository) SumBacked(ctx context.Context, campaignID uuid.UUID) (domain.LedgerTotals, error) {
	var sum, count int64
	err := r.q(ctx).QueryRow(ctx, `SELECT COALESCE(SUM(amount_backed), 0)::BIGINT, COUNT(*) FILTER (WHERE amount_backed > 0)
FROM backers WHERE campaign_id = $1`, campaignID).Scan(&sum, &count)
	if err != nil {
		return domain.LedgerTotals{}, err
	}
	return domain.LedgerTotals{Sum: uint64(sum), Count: uint64(count)}, nil
}

// InsertRelease appends to the release ledger.
func (r *CampaignRepository) InsertRelease(ctx context.Context, rel *domain.Release) error {
	_, err := r.q(ctx).Exec(ctx, `INSERT INTO releases (campaign_id, milestone, amount, receiver, created_at)
VALUES ($1,$2,$3,$4,$5)`, rel.CampaignID, int16(rel.Milestone), int64(rel.Amount), string(rel.Receiver), rel.CreatedAt)
	return err
}

// ListReleases returns releases ordered by milestone.
func (r *CampaignRepository) ListReleases(ctx context.Context, campaignID uuid.UUID) ([]domain.Release, error) {
	rows, err := r.q(ctx).Query(ctx, `SELECT campaign_id, milestone, amount, receiver, created_at
FROM releases WHERE campaign_id = $1 ORDER BY milestone`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Release, error) {
		var (
			rel       domain.Release
			milestone int16
			amount    int64
			receiver  string
		)
		err := row.Scan(&rel.CampaignID, &milestone, &amount, &receiver, &rel.CreatedAt)
		rel.Milestone = uint8(milestone)
		rel.Amount = uint64(amount)
		rel.Receiver = domain.Account(receiver)
		rel.CreatedAt = rel.CreatedAt.UTC()
		return rel, err
	})
}

// GetRefund returns the refund of account.
func (r *CampaignRepository) GetRefund(ctx context.Context, campaignID uuid.UUID, account domain.Account) (*domain.Refund, error) {
	var amount int64
	refund := domain.Refund{CampaignID: campaignID, Account: account}
	err := r.q(ctx).QueryRow(ctx, `SELECT amount, created_at FROM refunds WHERE campaign_id = $1 AND account = $2`,
		campaignID, string(account)).Scan(&amount, &refund.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	refund.Amount = uint64(amount)
	refund.CreatedAt = refund.CreatedAt.UTC()
	return &refund, nil
}

// InsertRefund books a refund.
func (r *CampaignRepository) InsertRefund(ctx context.Context, refund *domain.Refund) error {
	_, err := r.q(ctx).Exec(ctx, `INSERT INTO refunds (campaign_id, account, amount, created_at) VALUES ($1,$2,$3,$4)`,
		refund.CampaignID, string(refund.Account), int64(refund.Amount), refund.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyRefunded.Wrap(err)
	}
	return err
}

// GetRewardClaim returns the reward claim of account.
func (r *CampaignRepository) GetRewardClaim(ctx context.Context, campaignID uuid.UUID, account domain.Account) (*domain.RewardClaim, error) {
	claim := domain.RewardClaim{CampaignID: campaignID, Account: account}
	err := r.q(ctx).QueryRow(ctx, `SELECT reward_metadata, created_at FROM reward_claims WHERE campaign_id = $1 AND account = $2`,
		campaignID, string(account)).Scan(&claim.RewardMetadata, &claim.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	claim.CreatedAt = claim.CreatedAt.UTC()
	return &claim, nil
}

// InsertRewardClaim books a reward claim.
func (r *CampaignRepository) InsertRewardClaim(ctx context.Context, claim *domain.RewardClaim) error {
	_, err := r.q(ctx).Exec(ctx, `INSERT INTO reward_claims (campaign_id, account, reward_metadata, created_at) VALUES ($1,$2,$3,$4)`,
		claim.CampaignID, string(claim.Account), claim.RewardMetadata, claim.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrRewardAlreadyClaimed.Wrap(err)
	}
	return err
}

// AppendEvents stores journal entries in one batch.
func (r *CampaignRepository) AppendEvents(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(`INSERT INTO campaign_events (id, campaign_id, seq, type, actor, payload, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`, e.ID, e.CampaignID, int64(e.Seq), string(e.Type), string(e.Actor), []byte(e.Payload), e.CreatedAt)
	}
	var br pgx.BatchResults
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		br = tx.SendBatch(ctx, batch)
	} else {
		br = r.pool.SendBatch(ctx, batch)
	}
	for range events {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}
	return br.Close()
}

// ListEvents returns at most limit events after afterSeq.
func (r *CampaignRepository) ListEvents(ctx context.Context, campaignID uuid.UUID, afterSeq uint64, limit int) ([]domain.Event, error) {
	rows, err := r.q(ctx).Query(ctx, `SELECT id, campaign_id, seq, type, actor, payload, created_at
FROM campaign_events WHERE campaign_id = $1 AND seq > $2 ORDER BY seq LIMIT $3`, campaignID, int64(afterSeq), limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			e       domain.Event
			seq     int64
			typ     string
			actor   string
			payload []byte
		)
		err := row.Scan(&e.ID, &e.CampaignID, &seq, &typ, &actor, &payload, &e.CreatedAt)
		e.Seq = uint64(seq)
		e.Type = domain.EventType(typ)
		e.Actor = domain.Account(actor)
		e.Payload = payload
		e.CreatedAt = e.CreatedAt.UTC()
		return e, err
	})
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                                       domain.Campaign
		escrow, creator, receiver, authority    string
		goal, collected, backers, released, seq int64
		total, phase, reason                    int16
		reached                                 *int16
		allocations                             []int64
	)
	err := row.Scan(
		&c.ID,
		&escrow,
		&creator,
		&goal,
		&receiver,
		&c.Config.FundStart,
		&c.Config.FundEnd,
		&total,
		&allocations,
		&c.Config.RewardMetadata,
		&authority,
		&phase,
		&collected,
		&backers,
		&reached,
		&released,
		&reason,
		&seq,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.Escrow = domain.Account(escrow)
	c.Config.Creator = domain.Account(creator)
	c.Config.Goal = uint64(goal)
	c.Config.FundsReceiver = domain.Account(receiver)
	c.Config.FundStart = c.Config.FundStart.UTC()
	c.Config.FundEnd = c.Config.FundEnd.UTC()
	c.Config.TotalMilestones = uint8(total)
	c.Config.Allocations = make([]uint64, len(allocations))
	for i, a := range allocations {
		c.Config.Allocations[i] = uint64(a)
	}
	c.Config.ApprovalAuthority = domain.Account(authority)
	c.State = domain.CampaignState{
		Phase:          domain.Phase(phase),
		CollectedFunds: uint64(collected),
		TotalBackers:   uint64(backers),
		ReleasedFunds:  uint64(released),
		EndReason:      domain.EndReason(reason),
	}
	if reached != nil {
		c.State.ReachedMilestone = domain.MilestoneAt(uint8(*reached))
	}
	c.EventSeq = uint64(seq)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

func scanBacker(row pgx.CollectableRow) (domain.BackerRecord, error) {
	var (
		rec      domain.BackerRecord
		account  string
		amount   int64
		fundedAt *time.Time
	)
	err := row.Scan(&rec.CampaignID, &account, &amount, &rec.EnrolledAt, &fundedAt)
	rec.Account = domain.Account(account)
	rec.AmountBacked = uint64(amount)
	rec.EnrolledAt = rec.EnrolledAt.UTC()
	if fundedAt != nil {
		t := fundedAt.UTC()
		rec.FundedAt = &t
	}
	return rec, err
}

func reachedParam(m domain.NullMilestone) *int16 {
	if !m.Valid {
		return nil
	}
	v := int16(m.Index)
	return &v
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
