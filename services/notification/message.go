package notification

import (
	"fmt"

	"slotify/models"
)

// composeReminder builds the subject and body for one reminder, phrased for
// the bucket's lead time.
func composeReminder(payload models.ReminderPayload, business *models.Business) (string, string) {
	var when string
	switch payload.Bucket {
	case "48h":
		when = "in 2 days"
	case "24h":
		when = "tomorrow"
	case "3h":
		when = "in 3 hours"
	default:
		when = "soon"
	}

	local := payload.ScheduledAt
	if loc := business.Location(); loc != nil {
		local = local.In(loc)
	}

	subject := fmt.Sprintf("Reminder: your appointment at %s", business.Name)
	body := fmt.Sprintf("Hi %s, this is a reminder that your appointment at %s is %s, on %s at %s. See you there!",
		payload.CustomerName, business.Name, when,
		local.Format("Monday, Jan 2"), local.Format("15:04"))
	return subject, body
}
