package validations

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songkick/facade/domain"
)

func requireInvalidInput(t *testing.T, err error, param string) {
	t.Helper()
	require.Error(t, err)

	var invalidErr *domain.InvalidInputError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, param, invalidErr.Param)
}

func TestValidateLocationSearchRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"valid", "Berlin", false},
		{"valid with spaces", "New York", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLocationSearchRequest(&domain.LocationSearchRequest{LocationName: tt.query})
			if tt.wantErr {
				requireInvalidInput(t, err, "location_name")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEventsRequest(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		wantErr bool
	}{
		{"first page", 1, false},
		{"later page", 42, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventsRequest(&domain.EventsRequest{Page: tt.page})
			if tt.wantErr {
				requireInvalidInput(t, err, "page")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEventDetailsRequest(t *testing.T) {
	tests := []struct {
		name     string
		eventURL string
		wantErr  bool
	}{
		{"valid", "https://www.songkick.com/concerts/41830904", false},
		{"valid bare host", "https://songkick.com/concerts/41830904", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"relative path", "/concerts/41830904", true},
		{"wrong scheme", "ftp://www.songkick.com/concerts/1", true},
		{"foreign host", "https://evil.example.com/concerts/1", true},
		{"lookalike host", "https://notsongkick.com/concerts/1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventDetailsRequest(&domain.EventDetailsRequest{EventURL: tt.eventURL})
			if tt.wantErr {
				requireInvalidInput(t, err, "event_url")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTrackLocationRequest(t *testing.T) {
	valid := domain.TrackLocationRequest{
		SubjectID:         "28443",
		SubjectType:       "MetroArea",
		RelationshipType:  "tracker",
		AuthenticityToken: "tok123",
	}

	assert.NoError(t, ValidateTrackLocationRequest(&valid))

	missingSubject := valid
	missingSubject.SubjectID = ""
	requireInvalidInput(t, ValidateTrackLocationRequest(&missingSubject), "subject_id")

	missingToken := valid
	missingToken.AuthenticityToken = " "
	requireInvalidInput(t, ValidateTrackLocationRequest(&missingToken), "authenticity_token")

	missingRelationship := valid
	missingRelationship.RelationshipType = ""
	requireInvalidInput(t, ValidateTrackLocationRequest(&missingRelationship), "relationship_type")

	missingType := valid
	missingType.SubjectType = ""
	requireInvalidInput(t, ValidateTrackLocationRequest(&missingType), "subject_type")
}

func TestValidateUsageMetricRequest(t *testing.T) {
	ptrString := func(s string) *string { return &s }
	ptrInt64 := func(i int64) *int64 { return &i }

	assert.NoError(t, ValidateUsageMetricRequest(&domain.UsageMetricRequest{}))

	assert.NoError(t, ValidateUsageMetricRequest(&domain.UsageMetricRequest{
		Operation: ptrString("location_search"),
		From:      ptrInt64(1),
		To:        ptrInt64(2),
		GroupBy:   ptrString("operation"),
	}))

	requireInvalidInput(t, ValidateUsageMetricRequest(&domain.UsageMetricRequest{
		From: ptrInt64(-1),
	}), "from")

	requireInvalidInput(t, ValidateUsageMetricRequest(&domain.UsageMetricRequest{
		From: ptrInt64(20),
		To:   ptrInt64(10),
	}), "from")

	requireInvalidInput(t, ValidateUsageMetricRequest(&domain.UsageMetricRequest{
		GroupBy: ptrString("  "),
	}), "group_by")

	requireInvalidInput(t, ValidateUsageMetricRequest(&domain.UsageMetricRequest{
		Operation: ptrString(""),
	}), "operation")
}
