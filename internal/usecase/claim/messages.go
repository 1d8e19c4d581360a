package claim

import (
	"fmt"

	"lostfound-backend/internal/domain/item"
	"lostfound-backend/internal/domain/notification"
)

func newClaimMessage(adminID, claimID uint64, claimant string, kind item.Kind, itemName string) notification.Message {
	return notification.Message{
		UserID:    adminID,
		Type:      notification.TypeNewClaim,
		Title:     "New Claim Submitted 📝",
		Message:   fmt.Sprintf("User %s submitted a claim on %s item: \"%s\".", claimant, kind, itemName),
		RelatedID: &claimID,
	}
}

func approvedMessage(userID, claimID uint64, itemName string) notification.Message {
	return notification.Message{
		UserID:    userID,
		Type:      notification.TypeClaimApproved,
		Title:     "Claim Approved! ✅",
		Message:   fmt.Sprintf("Your claim for \"%s\" has been approved. The item will be returned to you shortly.", itemName),
		RelatedID: &claimID,
	}
}

func cascadeRejectedMessage(userID, claimID uint64) notification.Message {
	return notification.Message{
		UserID:    userID,
		Type:      notification.TypeClaimRejected,
		Title:     "Claim Rejected ❌",
		Message:   "Your claim has been rejected. Another claimant was approved for this item.",
		RelatedID: &claimID,
	}
}

func rejectedMessage(userID, claimID uint64, itemName, reason string) notification.Message {
	msg := fmt.Sprintf("Your claim for \"%s\" has been rejected.", itemName)
	if reason != "" {
		msg += " Reason: " + reason
	}
	return notification.Message{
		UserID:    userID,
		Type:      notification.TypeClaimRejected,
		Title:     "Claim Rejected ❌",
		Message:   msg,
		RelatedID: &claimID,
	}
}
