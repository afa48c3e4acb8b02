package domain

import (
	"time"

	"songkick/facade/buildinfo"
)

// Location is a single metro area returned by a location search. The track
// fields mirror the hidden inputs of the upstream tracking form and are empty
// when the page offers no track button.
type Location struct {
	Name              string `json:"name" example:"Berlin, Germany"`
	SubjectID         string `json:"subject_id" example:"28443"`
	URL               string `json:"url" example:"https://www.songkick.com/metro-areas/28443-germany-berlin"`
	TrackURL          string `json:"track_url,omitempty"`
	AuthenticityToken string `json:"authenticity_token,omitempty"`
	RelationshipType  string `json:"relationship_type,omitempty" example:"tracker"`
	SubjectType       string `json:"subject_type,omitempty" example:"MetroArea"`
	SuccessURL        string `json:"success_url,omitempty"`
}

// Event is a single entry of the tracked-artist calendar listing
type Event struct {
	DateTime      string `json:"date_time" example:"2026-09-12T19:00:00+0200"`
	Artist        string `json:"artist" example:"The Cure"`
	Venue         string `json:"venue" example:"Mercedes-Benz Arena"`
	Location      string `json:"location" example:"Berlin, Germany"`
	StreetAddress string `json:"street_address,omitempty"`
	EventURL      string `json:"event_url"`
	ImageURL      string `json:"image_url,omitempty"`
	TicketURL     string `json:"ticket_url,omitempty"`
}

// Ticket is one purchase option on an event detail page
type Ticket struct {
	Vendor string `json:"vendor" example:"Eventim"`
	Link   string `json:"link"`
}

// Venue describes the venue card of an event detail page
type Venue struct {
	Name    string `json:"name" example:"Mercedes-Benz Arena"`
	Address string `json:"address,omitempty"`
}

// AdditionalDetails holds the optional price and doors-open information
type AdditionalDetails struct {
	Price     string `json:"price,omitempty" example:"€45.50"`
	DoorsOpen string `json:"doors_open,omitempty" example:"18:00"`
}

// EventDetails is the full record of a single event page
type EventDetails struct {
	EventDateTime string            `json:"event_date_time" example:"Saturday 12 September 2026"`
	Name          string            `json:"name" example:"The Cure"`
	Location      string            `json:"location,omitempty" example:"Berlin, Germany"`
	ImageURL      string            `json:"image_url,omitempty"`
	Tickets       []Ticket          `json:"ticketing_information"`
	Venue         Venue             `json:"venue_information"`
	Additional    AdditionalDetails `json:"additional_details"`
}

// LocationSearchResponse is the payload of GET /location/search
type LocationSearchResponse struct {
	Success   bool       `json:"success" example:"true"`
	Message   string     `json:"message" example:"Locations retrieved successfully"`
	Error     string     `json:"error,omitempty" example:""`
	Locations []Location `json:"locations"`
}

// EventsResponse is the payload of GET /events
type EventsResponse struct {
	Success bool    `json:"success" example:"true"`
	Message string  `json:"message" example:"Events retrieved successfully"`
	Error   string  `json:"error,omitempty" example:""`
	Page    int     `json:"page" example:"1"`
	Events  []Event `json:"events"`
}

// EventDetailsResponse is the payload of GET /event
type EventDetailsResponse struct {
	Success      bool          `json:"success" example:"true"`
	Message      string        `json:"message" example:"Event details retrieved successfully"`
	Error        string        `json:"error,omitempty" example:""`
	EventDetails *EventDetails `json:"event_details,omitempty"`
}

// TrackLocationResponse is the payload of POST /location/track
type TrackLocationResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message,omitempty"`
}

// UsageMetricResponse represents aggregated usage data
type UsageMetricResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message" example:"Metrics retrieved successfully"`
	Error   string        `json:"error,omitempty" example:""`
	Metrics []UsageMetric `json:"metrics"`
}

type UsageMetric struct {
	// The "Bucket" holds the group name (e.g., "2026-08-23 10:00:00" or "location_search")
	Bucket        string  `json:"bucket"`
	TotalRequests uint64  `json:"total_requests"`
	FailedCount   uint64  `json:"failed_count"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
}

// HealthResponse represents the health status of the service
type HealthResponse struct {
	Status    string              `json:"status" example:"healthy"`
	Timestamp time.Time           `json:"timestamp" example:"2026-08-23T10:00:00Z"`
	BuildInfo buildinfo.Info      `json:"buildInfo"`
	Services  ServiceHealthStatus `json:"services"`
}

// ServiceHealthStatus represents the health status of optional dependencies
type ServiceHealthStatus struct {
	Redis      ServiceStatus `json:"redis"`
	ClickHouse ServiceStatus `json:"clickhouse"`
}

// ServiceStatus represents the status of a single dependency
type ServiceStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:""`
}
