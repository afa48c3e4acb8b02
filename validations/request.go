package validations

import (
	"net/url"
	"strings"
	"time"

	"songkick/facade/domain"
)

func ValidateLocationSearchRequest(request *domain.LocationSearchRequest) error {
	if strings.TrimSpace(request.LocationName) == "" {
		return &domain.InvalidInputError{Param: "location_name", Reason: "is required and must not be empty"}
	}
	return nil
}

func ValidateEventsRequest(request *domain.EventsRequest) error {
	if request.Page < 1 {
		return &domain.InvalidInputError{Param: "page", Reason: "must be a positive integer"}
	}
	return nil
}

func ValidateEventDetailsRequest(request *domain.EventDetailsRequest) error {
	raw := strings.TrimSpace(request.EventURL)
	if raw == "" {
		return &domain.InvalidInputError{Param: "event_url", Reason: "is required and must not be empty"}
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return &domain.InvalidInputError{Param: "event_url", Reason: "must be a well-formed URL"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &domain.InvalidInputError{Param: "event_url", Reason: "must be an absolute http(s) URL"}
	}
	host := parsed.Hostname()
	if host != "songkick.com" && !strings.HasSuffix(host, ".songkick.com") {
		return &domain.InvalidInputError{Param: "event_url", Reason: "must point at songkick.com"}
	}
	return nil
}

func ValidateTrackLocationRequest(request *domain.TrackLocationRequest) error {
	if request == nil {
		return &domain.InvalidInputError{Param: "body", Reason: "is required"}
	}
	if strings.TrimSpace(request.SubjectID) == "" {
		return &domain.InvalidInputError{Param: "subject_id", Reason: "is required"}
	}
	if strings.TrimSpace(request.AuthenticityToken) == "" {
		return &domain.InvalidInputError{Param: "authenticity_token", Reason: "is required"}
	}
	if strings.TrimSpace(request.RelationshipType) == "" {
		return &domain.InvalidInputError{Param: "relationship_type", Reason: "is required"}
	}
	if strings.TrimSpace(request.SubjectType) == "" {
		return &domain.InvalidInputError{Param: "subject_type", Reason: "is required"}
	}
	return nil
}

func ValidateUsageMetricRequest(request *domain.UsageMetricRequest) error {
	if request.From != nil {
		if *request.From <= 0 {
			return &domain.InvalidInputError{Param: "from", Reason: "must be a positive integer"}
		}
		if *request.From > time.Now().UTC().Unix() {
			return &domain.InvalidInputError{Param: "from", Reason: "cannot be in the future"}
		}
	}
	if request.To != nil {
		if *request.To <= 0 {
			return &domain.InvalidInputError{Param: "to", Reason: "must be a positive integer"}
		}
	}
	if request.From != nil && request.To != nil {
		if *request.From > *request.To {
			return &domain.InvalidInputError{Param: "from", Reason: "cannot be greater than to"}
		}
	}
	if request.GroupBy != nil {
		if strings.TrimSpace(*request.GroupBy) == "" {
			return &domain.InvalidInputError{Param: "group_by", Reason: "cannot be empty if provided"}
		}
	}
	if request.Operation != nil {
		if strings.TrimSpace(*request.Operation) == "" {
			return &domain.InvalidInputError{Param: "operation", Reason: "cannot be empty if provided"}
		}
	}
	return nil
}
