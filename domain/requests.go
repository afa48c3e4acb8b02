package domain

import "strconv"

// LocationSearchRequest holds the query for a location search
type LocationSearchRequest struct {
	LocationName string `json:"location_name" example:"Berlin"`
}

// EventsRequest holds the query for a paginated event listing
type EventsRequest struct {
	Page int `json:"page" example:"1" minimum:"1"`
}

// EventDetailsRequest holds the query for a single event detail lookup
type EventDetailsRequest struct {
	EventURL string `json:"event_url" example:"https://www.songkick.com/concerts/41830904"`
}

// TrackLocationRequest carries the tracking form fields scraped by a
// location search back to the upstream trackings endpoint
type TrackLocationRequest struct {
	SubjectID         string `json:"subject_id" example:"28443"`
	SubjectType       string `json:"subject_type" example:"MetroArea"`
	RelationshipType  string `json:"relationship_type" example:"tracker"`
	AuthenticityToken string `json:"authenticity_token"`
	SuccessURL        string `json:"success_url" example:"/metro-areas/28443-germany-berlin"`
	Untrack           bool   `json:"untrack" example:"false"`
}

// UsageMetricRequest represents a query for aggregated facade usage
type UsageMetricRequest struct {
	Operation *string `json:"operation" example:"location_search"`
	From      *int64  `json:"from" example:"1755820800"`
	To        *int64  `json:"to" example:"1755907200"`
	GroupBy   *string `json:"group_by" example:"operation"` // e.g., "operation" or "day"
}

// CacheKey returns the response cache key for a location search
func (r LocationSearchRequest) CacheKey() string {
	return "location_search:" + r.LocationName
}

// CacheKey returns the response cache key for an event listing page
func (r EventsRequest) CacheKey() string {
	return "events:" + strconv.Itoa(r.Page)
}

// CacheKey returns the response cache key for an event detail lookup
func (r EventDetailsRequest) CacheKey() string {
	return "event:" + r.EventURL
}
