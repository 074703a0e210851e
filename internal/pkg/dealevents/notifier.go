package dealevents

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/models"
)

// Notifier writes a notification row for the counterparty whenever a
// deal moves. Clients poll their notifications; there is no push
// delivery here.
type Notifier struct {
	db *gorm.DB
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// HandleDealEvent implements the Subscriber interface.
func (n *Notifier) HandleDealEvent(e Event) {
	var deal models.Deal
	if err := n.db.First(&deal, e.DealID).Error; err != nil {
		log.Printf("deal notifier: load deal %d: %v", e.DealID, err)
		return
	}

	recipient := deal.Counterparty(e.ActorID)

	notifyType := models.NOTIFY_DEAL_STAGE
	content := fmt.Sprintf("Deal %q moved from %s to %s", deal.Title, e.OldStage, e.NewStage)
	if e.Terminated() {
		notifyType = models.NOTIFY_DEAL_TERMINATED
		content = fmt.Sprintf("Deal %q was ended (%s)", deal.Title, e.NewStatus)
	} else if e.NewStatus != e.OldStatus {
		content = fmt.Sprintf("Deal %q is now %s", deal.Title, e.NewStatus)
	}

	if err := models.CreateNotification(n.db, recipient, notifyType, content, deal.ID); err != nil {
		log.Printf("deal notifier: create notification for user %d: %v", recipient, err)
	}
}
