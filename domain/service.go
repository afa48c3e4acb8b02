package domain

import (
	"context"
	"time"
)

// SongkickService is the facade exposed to the HTTP layer
type SongkickService interface {
	SearchLocations(ctx context.Context, req *LocationSearchRequest) (*LocationSearchResponse, error)
	ListEvents(ctx context.Context, req *EventsRequest) (*EventsResponse, error)
	GetEventDetails(ctx context.Context, req *EventDetailsRequest) (*EventDetailsResponse, error)
	TrackLocation(ctx context.Context, req *TrackLocationRequest) (*TrackLocationResponse, error)
	GetUsageMetrics(ctx context.Context, req *UsageMetricRequest) (*UsageMetricResponse, error)
}

// Provider fetches and maps data from the upstream event-discovery site.
// The standard implementation lives in the upstream package.
type Provider interface {
	SearchLocations(ctx context.Context, locationName string) ([]Location, error)
	ListEvents(ctx context.Context, page int) ([]Event, error)
	EventDetails(ctx context.Context, eventURL string) (*EventDetails, error)
	TrackLocation(ctx context.Context, req *TrackLocationRequest) (bool, error)
}

// Operation names used in error values and usage records
const (
	OpLocationSearch = "location_search"
	OpEvents         = "events"
	OpEventDetails   = "event_details"
	OpTrackLocation  = "track_location"
)

// UsageRecord is one completed facade operation, destined for the usage log
type UsageRecord struct {
	Operation      string
	Outcome        string // "ok", "upstream_error" or "upstream_format_error"
	UpstreamStatus int
	DurationMS     int64
	RequestedAt    time.Time
}
