package item

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lostfound-backend/internal/domain/apperr"
	domain "lostfound-backend/internal/domain/item"
	"lostfound-backend/internal/domain/user"
	"lostfound-backend/internal/infrastructure/embedding"
)

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Matcher is the post-creation matching hook; it must not fail the caller.
type Matcher interface {
	RunAfterItemCreated(ctx context.Context, kind domain.Kind, id uint64)
}

type Usecase struct {
	items    domain.Repository
	embedder Embedder
	matcher  Matcher
	logger   *zap.Logger
}

func NewUsecase(items domain.Repository, emb Embedder, m Matcher, logger *zap.Logger) *Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Usecase{items: items, embedder: emb, matcher: m, logger: logger.Named("item")}
}

func (u *Usecase) ReportLost(ctx context.Context, actor user.Actor, in LostItemInput) (*LostItemDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrNameMissing
	}
	it := &domain.LostItem{
		UserID:      actor.UserID,
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		LastSeen:    strings.TrimSpace(in.LastSeen),
		LastSeenAt:  in.LastSeenAt,
		Status:      domain.LostPending,
		Photo:       in.Photo,
	}
	if err := u.items.CreateLost(ctx, it); err != nil {
		return nil, apperr.Storage("creating lost item", err)
	}

	if vec := u.embed(ctx, domain.KindLost, it.ID, lostFields(it)); vec != nil {
		if err := u.items.UpdateLostEmbedding(ctx, it.ID, *vec); err != nil {
			u.logger.Error("storing embedding failed", zap.Uint64("lost_item_id", it.ID), zap.Error(err))
		} else {
			it.Embedding = vec
			u.runMatching(ctx, domain.KindLost, it.ID)
		}
	}
	return toLostDTO(it), nil
}

func (u *Usecase) ReportFound(ctx context.Context, actor user.Actor, in FoundItemInput) (*FoundItemDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrNameMissing
	}
	it := &domain.FoundItem{
		UserID:      actor.UserID,
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		WhereFound:  strings.TrimSpace(in.WhereFound),
		FoundAt:     in.FoundAt,
		Status:      domain.FoundPending,
		Photo:       in.Photo,
	}
	if err := u.items.CreateFound(ctx, it); err != nil {
		return nil, apperr.Storage("creating found item", err)
	}

	if vec := u.embed(ctx, domain.KindFound, it.ID, foundFields(it)); vec != nil {
		if err := u.items.UpdateFoundEmbedding(ctx, it.ID, *vec); err != nil {
			u.logger.Error("storing embedding failed", zap.Uint64("found_item_id", it.ID), zap.Error(err))
		} else {
			it.Embedding = vec
			u.runMatching(ctx, domain.KindFound, it.ID)
		}
	}
	return toFoundDTO(it), nil
}

// UpdateLost edits the owner's item and recomputes its embedding. The
// matching pipeline is not run; the next scan picks the item up.
func (u *Usecase) UpdateLost(ctx context.Context, actor user.Actor, id uint64, in LostItemInput) (*LostItemDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrNameMissing
	}
	it, err := u.items.GetLostByOwner(ctx, id, actor.UserID)
	if err != nil {
		return nil, notFound(err, "loading lost item")
	}
	it.Name = strings.TrimSpace(in.Name)
	it.Category = strings.TrimSpace(in.Category)
	it.Description = strings.TrimSpace(in.Description)
	it.LastSeen = strings.TrimSpace(in.LastSeen)
	it.LastSeenAt = in.LastSeenAt
	if in.Photo != "" {
		it.Photo = in.Photo
	}
	// on failure the previous vector is kept
	if vec := u.embed(ctx, domain.KindLost, it.ID, lostFields(it)); vec != nil {
		it.Embedding = vec
	}
	if err := u.items.SaveLost(ctx, it); err != nil {
		return nil, apperr.Storage("updating lost item", err)
	}
	return toLostDTO(it), nil
}

func (u *Usecase) UpdateFound(ctx context.Context, actor user.Actor, id uint64, in FoundItemInput) (*FoundItemDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrNameMissing
	}
	it, err := u.items.GetFoundByOwner(ctx, id, actor.UserID)
	if err != nil {
		return nil, notFound(err, "loading found item")
	}
	it.Name = strings.TrimSpace(in.Name)
	it.Category = strings.TrimSpace(in.Category)
	it.Description = strings.TrimSpace(in.Description)
	it.WhereFound = strings.TrimSpace(in.WhereFound)
	it.FoundAt = in.FoundAt
	if in.Photo != "" {
		it.Photo = in.Photo
	}
	if vec := u.embed(ctx, domain.KindFound, it.ID, foundFields(it)); vec != nil {
		it.Embedding = vec
	}
	if err := u.items.SaveFound(ctx, it); err != nil {
		return nil, apperr.Storage("updating found item", err)
	}
	return toFoundDTO(it), nil
}

// CloseLost marks the owner's lost item closed. Closing twice is a no-op.
func (u *Usecase) CloseLost(ctx context.Context, actor user.Actor, id uint64) (*LostItemDTO, error) {
	it, err := u.items.GetLostByOwner(ctx, id, actor.UserID)
	if err != nil {
		return nil, notFound(err, "loading lost item")
	}
	if it.Status != domain.LostClosed {
		if err := u.items.UpdateLostStatus(ctx, it.ID, domain.LostClosed); err != nil {
			return nil, apperr.Storage("closing lost item", err)
		}
		it.Status = domain.LostClosed
	}
	return toLostDTO(it), nil
}

func (u *Usecase) GetLost(ctx context.Context, actor user.Actor, id uint64) (*LostItemDTO, error) {
	it, err := u.items.GetLostByOwner(ctx, id, actor.UserID)
	if err != nil {
		return nil, notFound(err, "loading lost item")
	}
	return toLostDTO(it), nil
}

func (u *Usecase) GetFound(ctx context.Context, actor user.Actor, id uint64) (*FoundItemDTO, error) {
	it, err := u.items.GetFoundByOwner(ctx, id, actor.UserID)
	if err != nil {
		return nil, notFound(err, "loading found item")
	}
	return toFoundDTO(it), nil
}

func (u *Usecase) ListMine(ctx context.Context, actor user.Actor) (*MyItemsDTO, error) {
	lost, err := u.items.ListLostByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, apperr.Storage("listing lost items", err)
	}
	found, err := u.items.ListFoundByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, apperr.Storage("listing found items", err)
	}
	out := &MyItemsDTO{
		Lost:  make([]LostItemDTO, 0, len(lost)),
		Found: make([]FoundItemDTO, 0, len(found)),
	}
	for i := range lost {
		out.Lost = append(out.Lost, *toLostDTO(&lost[i]))
	}
	for i := range found {
		out.Found = append(out.Found, *toFoundDTO(&found[i]))
	}
	return out, nil
}

// embed returns the encoded vector, or nil when there is none to store.
// Embedding failures never fail the request.
func (u *Usecase) embed(ctx context.Context, kind domain.Kind, id uint64, f embedding.Fields) *string {
	if u.embedder == nil {
		return nil
	}
	vec, err := u.embedder.Embed(ctx, embedding.BuildItemText(f))
	if err != nil {
		u.logger.Warn("embedding failed, item kept without embedding",
			zap.String("kind", string(kind)), zap.Uint64("item_id", id), zap.Error(err))
		return nil
	}
	if vec == nil {
		return nil
	}
	s, err := embedding.Encode(vec)
	if err != nil {
		u.logger.Warn("encoding embedding failed",
			zap.String("kind", string(kind)), zap.Uint64("item_id", id), zap.Error(err))
		return nil
	}
	return &s
}

func (u *Usecase) runMatching(ctx context.Context, kind domain.Kind, id uint64) {
	if u.matcher != nil {
		u.matcher.RunAfterItemCreated(ctx, kind, id)
	}
}

func lostFields(it *domain.LostItem) embedding.Fields {
	return embedding.Fields{Name: it.Name, Description: it.Description, Location: it.LastSeen, Date: it.LastSeenAt}
}

func foundFields(it *domain.FoundItem) embedding.Fields {
	return embedding.Fields{Name: it.Name, Description: it.Description, Location: it.WhereFound, Date: it.FoundAt}
}

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return apperr.Storage(op, err)
}
