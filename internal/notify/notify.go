package notify

import (
	"bid4service/utils"
)

// Event names emitted by the workflow engines.
const (
	EventBidReceived        = "bid.received"
	EventBidAccepted        = "bid.accepted"
	EventBidRejected        = "bid.rejected"
	EventMilestoneCompleted = "milestone.completed"
	EventMilestoneRejected  = "milestone.rejected"
	EventCompletionRequest  = "project.completion_requested"
	EventPaymentReleased    = "payment.released"
	EventPaymentRefunded    = "payment.refunded"
)

// Notifier delivers best-effort notifications. Failures must never roll back
// the transition that triggered them; implementations log and move on.
type Notifier interface {
	Notify(userID, event string, fields map[string]any)
}

// LogNotifier records notifications in the structured log. Delivery mechanics
// (push/email) live outside this system.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(userID, event string, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["user_id"] = userID
	fields["event"] = event
	utils.Info("notification dispatched", fields)
}
