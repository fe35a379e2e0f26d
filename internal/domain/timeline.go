package domain

// Timeline item categories (closed enumeration).
const (
	CategoryMarketing   = "marketing"
	CategoryLogistics   = "logistics"
	CategoryPreparation = "preparation"
	CategoryExecution   = "execution"
)

// Timeline item statuses. The lifecycle is pending → confirmed → completed;
// the model itself does not enforce forward-only transitions.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

// Timeline item priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// TimelineItem is a single dated task derived from an event. Items are
// generated once per event and then owned by whoever persisted them; the
// whole list is replaced on every mutation.
type TimelineItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// ValidCategory reports whether s is a member of the category enumeration.
func ValidCategory(s string) bool {
	switch s {
	case CategoryMarketing, CategoryLogistics, CategoryPreparation, CategoryExecution:
		return true
	}
	return false
}

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// ValidPriority reports whether s is a member of the priority enumeration.
func ValidPriority(s string) bool {
	switch s {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
