package timeline

import (
	"fmt"
	"strconv"

	"github.com/jrdxnra/eventflow-service/internal/domain"
)

// MigrateLegacyIDs rewrites item ids persisted in the legacy bare-numeric
// format ("1", "2", ...) to {eventID}-{1-based position}, restoring
// uniqueness across events. Items already carrying a composite id and all
// other fields are left untouched.
func MigrateLegacyIDs(eventID string, items []domain.TimelineItem) []domain.TimelineItem {
	out := make([]domain.TimelineItem, len(items))
	for i, item := range items {
		if _, err := strconv.Atoi(item.ID); err == nil {
			item.ID = fmt.Sprintf("%s-%d", eventID, i+1)
		}
		out[i] = item
	}
	return out
}
