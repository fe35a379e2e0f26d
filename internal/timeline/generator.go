package timeline

import (
	"fmt"
	"sort"

	"github.com/jrdxnra/eventflow-service/internal/domain"
)

// DefaultDueTime is the due time stamped on every generated item.
const DefaultDueTime = "07:00"

// ticketingPlaceholder is used when an event needs ticketing but no details
// were captured on the wizard.
const ticketingPlaceholder = "Request tickets and supplies for the event"

// rule describes one candidate timeline item: when it applies, how many days
// before the event it is due, and the item it produces.
type rule struct {
	applies     func(e *domain.Event) bool
	offsetDays  int
	category    string
	priority    string
	title       string
	description func(e *domain.Event) string
}

func staticDescription(s string) func(*domain.Event) string {
	return func(*domain.Event) string { return s }
}

// rules is declared in offset order (furthest out first). Generation walks it
// top to bottom, so the sequence numbers embedded in item ids follow this
// declaration order regardless of which conditional rules fire.
var rules = []rule{
	{
		applies:     func(e *domain.Event) bool { return e.HasChannel(domain.ChannelMedia) },
		offsetDays:  30,
		category:    domain.CategoryMarketing,
		priority:    domain.PriorityHigh,
		title:       "Create social media content",
		description: staticDescription("Draft and schedule posts announcing the event"),
	},
	{
		applies:     func(e *domain.Event) bool { return e.HasChannel(domain.ChannelFlyers) },
		offsetDays:  30,
		category:    domain.CategoryMarketing,
		priority:    domain.PriorityHigh,
		title:       "Design and print flyers",
		description: staticDescription("Design flyers and send them to print"),
	},
	{
		applies:    func(e *domain.Event) bool { return e.TicketingNeeded },
		offsetDays: 21,
		category:   domain.CategoryLogistics,
		priority:   domain.PriorityHigh,
		title:      "Submit ticket and supply request",
		description: func(e *domain.Event) string {
			if e.TicketingDetails != "" {
				return e.TicketingDetails
			}
			return ticketingPlaceholder
		},
	},
	{
		applies:     func(e *domain.Event) bool { return e.HasChannel(domain.ChannelEmail) },
		offsetDays:  14,
		category:    domain.CategoryMarketing,
		priority:    domain.PriorityHigh,
		title:       "Send email campaign",
		description: staticDescription("Send the announcement email to the member list"),
	},
	{
		applies:     nil,
		offsetDays:  7,
		category:    domain.CategoryPreparation,
		priority:    domain.PriorityMedium,
		title:       "Prepare event materials",
		description: staticDescription("Gather equipment, signage, and handouts"),
	},
	{
		applies:     nil,
		offsetDays:  3,
		category:    domain.CategoryLogistics,
		priority:    domain.PriorityHigh,
		title:       "Venue walkthrough",
		description: staticDescription("Walk the venue and confirm layout and access"),
	},
	{
		applies:     nil,
		offsetDays:  1,
		category:    domain.CategoryPreparation,
		priority:    domain.PriorityHigh,
		title:       "Team briefing",
		description: staticDescription("Brief the team on roles and the run sheet"),
	},
	{
		applies:     nil,
		offsetDays:  0,
		category:    domain.CategoryExecution,
		priority:    domain.PriorityHigh,
		title:       "Event day setup",
		description: staticDescription("Set up the venue before doors open"),
	},
}

// Generate derives the planning timeline for an event. It is pure and
// deterministic: equal events produce equal item lists. Items are returned
// sorted ascending by due date; ids are {eventID}-{n} with n assigned in rule
// order before sorting. Due dates in the past are kept as-is; surfacing
// overdue items is the caller's concern.
func Generate(event *domain.Event) ([]domain.TimelineItem, error) {
	eventDate, err := event.EventDate()
	if err != nil {
		return nil, err
	}

	items := make([]domain.TimelineItem, 0, len(rules))
	seq := 1
	for _, r := range rules {
		if r.applies != nil && !r.applies(event) {
			continue
		}
		due := eventDate.AddDate(0, 0, -r.offsetDays)
		items = append(items, domain.TimelineItem{
			ID:          fmt.Sprintf("%s-%d", event.ID, seq),
			Title:       r.title,
			Description: r.description(event),
			DueDate:     due.Format(domain.DateFormat),
			DueTime:     DefaultDueTime,
			Category:    r.category,
			Status:      domain.StatusPending,
			Priority:    r.priority,
		})
		seq++
	}

	// The rule table is already non-decreasing by due date, but conditional
	// rules may be skipped, so sort explicitly. Stable keeps declaration
	// order for same-day items.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate < items[j].DueDate
	})

	return items, nil
}
