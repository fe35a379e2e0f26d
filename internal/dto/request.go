package dto

import "github.com/jrdxnra/eventflow-service/internal/domain"

// SaveEventRequest represents an event create or update request
type SaveEventRequest struct {
	Name             string   `json:"name" binding:"required" example:"Spring Fitness Kickoff"`
	Date             string   `json:"date" binding:"required" example:"2025-06-15"`
	StartTime        string   `json:"start_time" example:"09:00"`
	EndTime          string   `json:"end_time" example:"12:00"`
	Location         string   `json:"location" example:"Main Gym"`
	Channels         []string `json:"channels" example:"media,email"`
	TicketingNeeded  bool     `json:"ticketing_needed" example:"true"`
	TicketingDetails string   `json:"ticketing_details" example:"40 wristbands, 2 scanners"`
}

// ToDomain converts the request into a domain event with the given id.
func (r *SaveEventRequest) ToDomain(id string) *domain.Event {
	return &domain.Event{
		ID:               id,
		Name:             r.Name,
		Date:             r.Date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Location:         r.Location,
		Channels:         r.Channels,
		TicketingNeeded:  r.TicketingNeeded,
		TicketingDetails: r.TicketingDetails,
	}
}

// ReplaceTimelineRequest represents a whole-list timeline replacement
type ReplaceTimelineRequest struct {
	Items []domain.TimelineItem `json:"items" binding:"required"`
}

// SaveCoachRequest represents a coach create or update request
type SaveCoachRequest struct {
	Name      string `json:"name" binding:"required" example:"Jordan Reyes"`
	Specialty string `json:"specialty" example:"strength"`
	Phone     string `json:"phone" example:"555-0142"`
	Email     string `json:"email" example:"jordan@example.com"`
}

// ToDomain converts the request into a domain coach with the given id.
func (r *SaveCoachRequest) ToDomain(id string) *domain.Coach {
	return &domain.Coach{
		ID:        id,
		Name:      r.Name,
		Specialty: r.Specialty,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

// SaveContactRequest represents a contact create or update request
type SaveContactRequest struct {
	Name  string `json:"name" binding:"required" example:"Riley Chen"`
	Role  string `json:"role" example:"venue manager"`
	Phone string `json:"phone" example:"555-0188"`
	Email string `json:"email" example:"riley@example.com"`
}

// ToDomain converts the request into a domain contact with the given id.
func (r *SaveContactRequest) ToDomain(id string) *domain.Contact {
	return &domain.Contact{
		ID:    id,
		Name:  r.Name,
		Role:  r.Role,
		Phone: r.Phone,
		Email: r.Email,
	}
}

// ReplaceLogisticsRequest represents a whole-bundle logistics replacement
type ReplaceLogisticsRequest struct {
	TeamMembers   []domain.TeamMember   `json:"team_members"`
	Activities    []domain.Activity     `json:"activities"`
	ScheduleItems []domain.ScheduleItem `json:"schedule_items"`
	Contacts      []domain.EventContact `json:"contacts"`
}

// ToDomain converts the request into a bundle owned by the given event.
func (r *ReplaceLogisticsRequest) ToDomain(eventID string) *domain.LogisticsBundle {
	return &domain.LogisticsBundle{
		EventID:       eventID,
		TeamMembers:   r.TeamMembers,
		Activities:    r.Activities,
		ScheduleItems: r.ScheduleItems,
		Contacts:      r.Contacts,
	}
}
