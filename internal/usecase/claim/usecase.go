package claim

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lostfound-backend/internal/domain/apperr"
	domain "lostfound-backend/internal/domain/claim"
	itemDomain "lostfound-backend/internal/domain/item"
	matchDomain "lostfound-backend/internal/domain/match"
	notificationDomain "lostfound-backend/internal/domain/notification"
	"lostfound-backend/internal/domain/uow"
	userDomain "lostfound-backend/internal/domain/user"
	"lostfound-backend/internal/infrastructure/metrics"
)

var ErrInvalidStatus = apperr.Validation("status must be Pending, Approved or Rejected")

// Notifier is the best-effort sink; it never returns an error.
type Notifier interface {
	Notify(ctx context.Context, msg notificationDomain.Message) bool
}

type Usecase struct {
	claims   domain.Repository
	users    userDomain.Repository
	uow      uow.UnitOfWork
	notifier Notifier
	logger   *zap.Logger
	metrics  metrics.Recorder
}

func NewUsecase(claims domain.Repository, users userDomain.Repository, tx uow.UnitOfWork, n Notifier, logger *zap.Logger, rec metrics.Recorder) *Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Usecase{claims: claims, users: users, uow: tx, notifier: n, logger: logger.Named("claim"), metrics: rec}
}

// Submit files a Pending claim for the addressed item and marks the item
// claimed. Admins are notified after commit.
func (u *Usecase) Submit(ctx context.Context, actor userDomain.Actor, in SubmitInput) (*ClaimDTO, error) {
	if in.ItemID == 0 {
		return nil, domain.ErrInvalidItem
	}
	kind, err := itemDomain.ParseKind(in.ItemType)
	if err != nil {
		return nil, err
	}
	justification := strings.TrimSpace(in.Justification)

	var (
		c   *domain.Claim
		ref *itemDomain.Ref
	)
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		ref, err = r.Items.GetRef(ctx, kind, in.ItemID)
		if err != nil {
			return notFound(err, itemDomain.ErrNotFound)
		}
		if ref.OwnerID == actor.UserID {
			return domain.ErrOwnItem
		}
		if justification == "" {
			return domain.ErrJustification
		}

		c = &domain.Claim{UserID: actor.UserID, Status: domain.StatusPending, Justification: justification}
		if in.MatchID != nil {
			m, err := r.Matches.GetByID(ctx, *in.MatchID)
			if err != nil {
				return notFound(err, matchDomain.ErrNotFound)
			}
			side := m.LostItemID
			if kind == itemDomain.KindFound {
				side = m.FoundItemID
			}
			if side != ref.ID {
				return domain.ErrItemNotInMatch
			}
			lost, found := m.LostItemID, m.FoundItemID
			c.MatchID, c.LostItemID, c.FoundItemID = &m.ID, &lost, &found

			// dedup rule 1: one pending claim per match
			if _, err := r.Claims.FindPendingByMatch(ctx, m.ID, actor.UserID); err == nil {
				return domain.ErrDuplicateMatchClaim
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else if kind == itemDomain.KindLost {
			c.LostItemID = &ref.ID
		} else {
			c.FoundItemID = &ref.ID
		}

		// dedup rule 2: one pending claim per (lost, found) pair
		if _, err := r.Claims.FindPendingByItems(ctx, actor.UserID, c.LostItemID, c.FoundItemID); err == nil {
			return domain.ErrDuplicateItemClaim
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := r.Claims.Create(ctx, c); err != nil {
			// lost the race against a concurrent submit
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if c.MatchID != nil {
					return domain.ErrDuplicateMatchClaim
				}
				return domain.ErrDuplicateItemClaim
			}
			return err
		}
		if kind == itemDomain.KindLost {
			return r.Items.UpdateLostStatus(ctx, ref.ID, itemDomain.LostClaimed)
		}
		return r.Items.UpdateFoundStatus(ctx, ref.ID, itemDomain.FoundClaimed)
	})
	if err != nil {
		return nil, apperr.AsStorage("submitting claim", err)
	}

	u.metrics.ClaimSubmitted()
	u.logger.Info("claim submitted",
		zap.Uint64("claim_id", c.ID), zap.Uint64("user_id", actor.UserID),
		zap.String("kind", string(kind)), zap.Uint64("item_id", ref.ID))
	u.notifyAdmins(ctx, c.ID, actor.Name, kind, ref.Name)

	dto := toDTO(c)
	return &dto, nil
}

func (u *Usecase) notifyAdmins(ctx context.Context, claimID uint64, claimant string, kind itemDomain.Kind, itemName string) {
	admins, err := u.users.ListIDsByRole(ctx, userDomain.RoleAdmin)
	if err != nil {
		u.logger.Warn("listing admins for notification failed", zap.Uint64("claim_id", claimID), zap.Error(err))
		return
	}
	for _, id := range admins {
		u.notify(ctx, newClaimMessage(id, claimID, claimant, kind, itemName))
	}
}

func (u *Usecase) notify(ctx context.Context, msg notificationDomain.Message) {
	if u.notifier == nil {
		return
	}
	if !u.notifier.Notify(ctx, msg) {
		u.logger.Warn("notification not delivered",
			zap.Uint64("user_id", msg.UserID), zap.String("type", string(msg.Type)))
	}
}

// Approve moves a Pending claim to Approved, closes out its items and
// rejects every other Pending claim on the same match, atomically.
func (u *Usecase) Approve(ctx context.Context, actor userDomain.Actor, claimID uint64) (*DecisionDTO, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	var (
		out      DecisionDTO
		itemName string
		rejected []domain.Claim
	)
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *domain.Claim) error {
		if !c.IsPending() {
			return domain.ErrNotPending
		}
		if err := r.Claims.UpdateStatus(ctx, c.ID, domain.StatusApproved); err != nil {
			return err
		}
		c.Status = domain.StatusApproved

		if c.LostItemID != nil {
			if err := r.Items.UpdateLostStatus(ctx, *c.LostItemID, itemDomain.LostRecovered); err != nil {
				return err
			}
		}
		if c.FoundItemID != nil {
			if err := r.Items.UpdateFoundStatus(ctx, *c.FoundItemID, itemDomain.FoundReturned); err != nil {
				return err
			}
		}

		rejected = nil
		if c.MatchID != nil {
			siblings, err := r.Claims.ListPendingByMatch(ctx, *c.MatchID, c.ID)
			if err != nil {
				return err
			}
			for _, s := range siblings {
				if err := r.Claims.UpdateStatus(ctx, s.ID, domain.StatusRejected); err != nil {
					return err
				}
			}
			rejected = siblings
		}

		var err error
		if itemName, err = claimedItemName(ctx, r, c); err != nil {
			return err
		}
		out.Claim = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, decisionErr("approving claim", err)
	}

	u.metrics.ClaimDecided(string(domain.StatusApproved))
	out.CascadeRejected = make([]uint64, 0, len(rejected))
	for _, s := range rejected {
		out.CascadeRejected = append(out.CascadeRejected, s.ID)
		u.metrics.ClaimDecided(string(domain.StatusRejected))
	}
	u.logger.Info("claim approved",
		zap.Uint64("claim_id", claimID), zap.Uint64("admin_id", actor.UserID),
		zap.Int("cascade_rejected", len(rejected)))

	u.notify(ctx, approvedMessage(out.Claim.UserID, claimID, itemName))
	seen := make(map[uint64]struct{}, len(rejected))
	for _, s := range rejected {
		if _, ok := seen[s.UserID]; ok {
			continue
		}
		seen[s.UserID] = struct{}{}
		u.notify(ctx, cascadeRejectedMessage(s.UserID, claimID))
	}
	return &out, nil
}

// Reject moves a Pending claim to Rejected. Item statuses are left alone.
func (u *Usecase) Reject(ctx context.Context, actor userDomain.Actor, claimID uint64, reason string) (*DecisionDTO, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	var (
		out      DecisionDTO
		itemName string
	)
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *domain.Claim) error {
		if !c.IsPending() {
			return domain.ErrNotPending
		}
		if err := r.Claims.UpdateStatus(ctx, c.ID, domain.StatusRejected); err != nil {
			return err
		}
		c.Status = domain.StatusRejected

		var err error
		if itemName, err = claimedItemName(ctx, r, c); err != nil {
			return err
		}
		out.Claim = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, decisionErr("rejecting claim", err)
	}

	u.metrics.ClaimDecided(string(domain.StatusRejected))
	u.logger.Info("claim rejected", zap.Uint64("claim_id", claimID), zap.Uint64("admin_id", actor.UserID))
	u.notify(ctx, rejectedMessage(out.Claim.UserID, claimID, itemName, strings.TrimSpace(reason)))
	return &out, nil
}

// LinkItem fills the empty side of a claim. Status is not touched.
func (u *Usecase) LinkItem(ctx context.Context, actor userDomain.Actor, claimID uint64, in LinkInput) (*ClaimDTO, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	kind, err := itemDomain.ParseKind(in.ItemType)
	if err != nil {
		return nil, err
	}
	if in.ItemID == 0 {
		return nil, domain.ErrInvalidItem
	}

	var out ClaimDTO
	err = u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *domain.Claim) error {
		if (kind == itemDomain.KindLost && c.LostItemID != nil) || (kind == itemDomain.KindFound && c.FoundItemID != nil) {
			return domain.ErrSideLinked
		}
		ref, err := r.Items.GetRef(ctx, kind, in.ItemID)
		if err != nil {
			return notFound(err, itemDomain.ErrNotFound)
		}
		lost, found := c.LostItemID, c.FoundItemID
		if kind == itemDomain.KindLost {
			lost = &ref.ID
		} else {
			found = &ref.ID
		}

		// the linked pair must still satisfy dedup rule 2
		if c.IsPending() {
			if dup, err := r.Claims.FindPendingByItems(ctx, c.UserID, lost, found); err == nil && dup.ID != c.ID {
				return domain.ErrDuplicateItemClaim
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		if kind == itemDomain.KindLost {
			err = r.Claims.SetLostItem(ctx, c.ID, ref.ID)
		} else {
			err = r.Claims.SetFoundItem(ctx, c.ID, ref.ID)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateItemClaim
		}
		if err != nil {
			return err
		}
		c.LostItemID, c.FoundItemID = lost, found
		out = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, decisionErr("linking claim item", err)
	}
	u.logger.Info("claim item linked",
		zap.Uint64("claim_id", claimID), zap.String("kind", string(kind)), zap.Uint64("item_id", in.ItemID))
	return &out, nil
}

// List is the admin claims page; an empty status lists everything.
func (u *Usecase) List(ctx context.Context, actor userDomain.Actor, status string) ([]ClaimDTO, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	f := domain.Filter{Status: domain.Status(strings.TrimSpace(status))}
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	claims, err := u.claims.List(ctx, f)
	if err != nil {
		return nil, apperr.Storage("listing claims", err)
	}
	out := make([]ClaimDTO, 0, len(claims))
	for i := range claims {
		out = append(out, toDTO(&claims[i]))
	}
	return out, nil
}

func (u *Usecase) PendingCount(ctx context.Context, actor userDomain.Actor) (int64, error) {
	if !actor.IsAdmin() {
		return 0, domain.ErrAdminOnly
	}
	n, err := u.claims.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return 0, apperr.Storage("counting pending claims", err)
	}
	return n, nil
}

// claimedItemName names the item in claimant notifications: the lost side
// when present, else the found side.
func claimedItemName(ctx context.Context, r uow.Repos, c *domain.Claim) (string, error) {
	kind, id := itemDomain.KindLost, c.LostItemID
	if id == nil {
		kind, id = itemDomain.KindFound, c.FoundItemID
	}
	if id == nil {
		return "Item", nil
	}
	ref, err := r.Items.GetRef(ctx, kind, *id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Item", nil
	}
	if err != nil {
		return "", err
	}
	return ref.Name, nil
}

func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}

func decisionErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return apperr.AsStorage(op, err)
}
