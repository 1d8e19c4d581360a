package matching

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"lostfound-backend/internal/domain/apperr"
	claimDomain "lostfound-backend/internal/domain/claim"
	itemDomain "lostfound-backend/internal/domain/item"
	matchDomain "lostfound-backend/internal/domain/match"
	"lostfound-backend/internal/domain/uow"
	userDomain "lostfound-backend/internal/domain/user"
	"lostfound-backend/internal/infrastructure/embedding"
	"lostfound-backend/internal/infrastructure/metrics"
	"lostfound-backend/pkg/similarity"
)

var ErrThreshold = apperr.Validation("threshold must be between -1 and 1")

type Usecase struct {
	matches   matchDomain.Repository
	uow       uow.UnitOfWork
	threshold float64
	logger    *zap.Logger
	metrics   metrics.Recorder
	now       func() time.Time
}

// NewUsecase: threshold is what RunAfterItemCreated uses.
func NewUsecase(matches matchDomain.Repository, tx uow.UnitOfWork, threshold float64, logger *zap.Logger, rec metrics.Recorder) *Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Usecase{
		matches:   matches,
		uow:       tx,
		threshold: threshold,
		logger:    logger.Named("matching"),
		metrics:   rec,
		now:       time.Now,
	}
}

func (u *Usecase) Threshold() float64 { return u.threshold }

type decoded struct {
	id  uint64
	vec []float32
}

// GenerateMatches scores every unmatched lost item against every found item
// and returns the pairs at or above threshold. Unreadable embeddings are
// skipped, never fatal.
func (u *Usecase) GenerateMatches(ctx context.Context, threshold float64) ([]matchDomain.Candidate, error) {
	if math.IsNaN(threshold) || threshold < -1 || threshold > 1 {
		return nil, ErrThreshold
	}

	lost, err := u.matches.ListUnmatchedLost(ctx)
	if err != nil {
		return nil, apperr.Storage("listing unmatched lost items", err)
	}
	found, err := u.matches.ListFoundWithEmbedding(ctx)
	if err != nil {
		return nil, apperr.Storage("listing found items", err)
	}

	founds := make([]decoded, 0, len(found))
	for _, f := range found {
		vec, err := embedding.Decode(f.Embedding)
		if err != nil {
			u.skip("found", f.ID, err)
			continue
		}
		founds = append(founds, decoded{id: f.ID, vec: vec})
	}

	var out []matchDomain.Candidate
	for _, l := range lost {
		lv, err := embedding.Decode(l.Embedding)
		if err != nil {
			u.skip("lost", l.ID, err)
			continue
		}
		for _, f := range founds {
			sim := similarity.Cosine(lv, f.vec)
			if sim < threshold {
				continue
			}
			out = append(out, matchDomain.Candidate{
				LostItemID:  l.ID,
				FoundItemID: f.id,
				Score:       similarity.Score(sim),
			})
		}
	}
	u.metrics.MatchCandidates(len(out))
	return out, nil
}

func (u *Usecase) skip(side string, id uint64, err error) {
	u.metrics.MatchPairSkipped(side + "_embedding")
	u.logger.Warn("skipping item with unreadable embedding",
		zap.String("side", side), zap.Uint64("item_id", id), zap.Error(err))
}

// SaveMatches persists candidates in one transaction; pairs that already
// exist are skipped. Any failure rolls back the whole batch.
func (u *Usecase) SaveMatches(ctx context.Context, candidates []matchDomain.Candidate) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}
	inserted := 0
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inserted = 0
		for _, c := range candidates {
			exists, err := r.Matches.Exists(ctx, c.LostItemID, c.FoundItemID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			ok, err := r.Matches.Create(ctx, &matchDomain.Match{
				LostItemID:  c.LostItemID,
				FoundItemID: c.FoundItemID,
				Score:       c.Score,
				CreatedAt:   u.now().UTC(),
			})
			if err != nil {
				return err
			}
			if ok {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperr.Storage("saving matches", err)
	}
	u.metrics.MatchesInserted(inserted)
	return inserted, nil
}

func (u *Usecase) RunPipeline(ctx context.Context, threshold float64) (*PipelineResult, error) {
	start := u.now()
	res, err := u.runPipeline(ctx, threshold)
	d := u.now().Sub(start)
	u.metrics.PipelineRun(d, err)
	if err != nil {
		return nil, err
	}
	res.Duration = d
	res.DurationMS = d.Milliseconds()
	u.logger.Info("matching pipeline finished",
		zap.Float64("threshold", threshold),
		zap.Int("candidates", res.Candidates),
		zap.Int("inserted", res.Inserted),
		zap.Duration("duration", d))
	return res, nil
}

func (u *Usecase) runPipeline(ctx context.Context, threshold float64) (*PipelineResult, error) {
	candidates, err := u.GenerateMatches(ctx, threshold)
	if err != nil {
		return nil, err
	}
	inserted, err := u.SaveMatches(ctx, candidates)
	if err != nil {
		return nil, err
	}
	return &PipelineResult{Candidates: len(candidates), Inserted: inserted}, nil
}

// RunAfterItemCreated runs the pipeline inline; failures are logged only.
func (u *Usecase) RunAfterItemCreated(ctx context.Context, kind itemDomain.Kind, id uint64) {
	if _, err := u.RunPipeline(ctx, u.threshold); err != nil {
		u.logger.Error("matching after item creation failed",
			zap.String("kind", string(kind)), zap.Uint64("item_id", id), zap.Error(err))
	}
}

// ListForUser splits the actor's matches by the side they own. The badge
// counts lost-side matches plus found-side ones awaiting a claim decision.
func (u *Usecase) ListForUser(ctx context.Context, actor userDomain.Actor) (*UserMatchesDTO, error) {
	views, err := u.matches.ListForOwner(ctx, actor.UserID)
	if err != nil {
		return nil, apperr.Storage("listing matches", err)
	}
	out := &UserMatchesDTO{
		LostMatches:  []matchDomain.View{},
		FoundMatches: []matchDomain.View{},
	}
	for _, v := range views {
		if v.Lost.OwnerID == actor.UserID {
			out.LostMatches = append(out.LostMatches, v)
			out.BadgeCount++
		}
		if v.Found.OwnerID == actor.UserID {
			out.FoundMatches = append(out.FoundMatches, v)
			if v.LatestClaim != nil && v.LatestClaim.Status == string(claimDomain.StatusPending) {
				out.BadgeCount++
			}
		}
	}
	return out, nil
}
