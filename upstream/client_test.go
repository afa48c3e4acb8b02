package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songkick/facade/config"
	"songkick/facade/domain"
)

func clientFor(srv *httptest.Server) *Client {
	return NewClient(&config.SongkickConfig{
		BaseURL:   srv.URL,
		Cookies:   "session=abc123",
		UserAgent: "test-agent",
		TimeoutMS: 2000,
	})
}

func TestSearchLocationsRequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	var gotUserAgent, gotCookie string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"type":   r.URL.Query().Get("type"),
			"query":  r.URL.Query().Get("query"),
			"commit": r.URL.Query().Get("commit"),
		}
		gotUserAgent = r.Header.Get("User-Agent")
		gotCookie = r.Header.Get("Cookie")
		_, _ = w.Write([]byte(locationsFixture))
	}))
	defer srv.Close()

	c := clientFor(srv)
	locations, err := c.SearchLocations(context.Background(), "Berlin")
	require.NoError(t, err)
	require.NotEmpty(t, locations)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "locations", gotQuery["type"])
	assert.Equal(t, "Berlin", gotQuery["query"])
	assert.Equal(t, "Search", gotQuery["commit"])
	assert.Equal(t, "test-agent", gotUserAgent)
	assert.Equal(t, "session=abc123", gotCookie)
}

func TestListEventsRequestShape(t *testing.T) {
	var gotFilter, gotPage string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter")
		gotPage = r.URL.Query().Get("page")
		_, _ = w.Write([]byte(eventsFixture))
	}))
	defer srv.Close()

	c := clientFor(srv)
	events, err := c.ListEvents(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "tracked_artist", gotFilter)
	assert.Equal(t, "3", gotPage)
}

func TestEventDetailsFetchesGivenURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/concerts/41830904", r.URL.Path)
		_, _ = w.Write([]byte(eventDetailsFixture))
	}))
	defer srv.Close()

	c := clientFor(srv)
	details, err := c.EventDetails(context.Background(), srv.URL+"/concerts/41830904")
	require.NoError(t, err)
	assert.Equal(t, "The Cure", details.Name)
}

func TestNonSuccessStatusIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := clientFor(srv)
	_, err := c.SearchLocations(context.Background(), "Berlin")
	require.Error(t, err)

	var upstreamErr *domain.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusServiceUnavailable, upstreamErr.StatusCode)
	assert.Equal(t, domain.OpLocationSearch, upstreamErr.Op)
}

func TestUnreachableUpstreamIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := clientFor(srv)
	srv.Close() // connection refused from here on

	for _, call := range []func() error{
		func() error { _, err := c.SearchLocations(context.Background(), "Berlin"); return err },
		func() error { _, err := c.ListEvents(context.Background(), 1); return err },
		func() error { _, err := c.EventDetails(context.Background(), srv.URL+"/concerts/1"); return err },
	} {
		err := call()
		require.Error(t, err)

		var upstreamErr *domain.UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Zero(t, upstreamErr.StatusCode)
		assert.Error(t, upstreamErr.Err)
	}
}

func TestTrackLocationPostsForm(t *testing.T) {
	var gotPath, gotToken, gotSubjectID, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotToken = r.PostFormValue("authenticity_token")
		gotSubjectID = r.PostFormValue("subject_id")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := clientFor(srv)
	ok, err := c.TrackLocation(context.Background(), &domain.TrackLocationRequest{
		SubjectID:         "28443",
		SubjectType:       "MetroArea",
		RelationshipType:  "tracker",
		AuthenticityToken: "tok123",
		SuccessURL:        "/metro-areas/28443-germany-berlin",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "/trackings", gotPath)
	assert.Equal(t, "tok123", gotToken)
	assert.Equal(t, "28443", gotSubjectID)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
}

func TestTrackLocationUntrackPath(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	c := clientFor(srv)
	ok, err := c.TrackLocation(context.Background(), &domain.TrackLocationRequest{
		SubjectID:         "28443",
		SubjectType:       "MetroArea",
		RelationshipType:  "tracker",
		AuthenticityToken: "tok123",
		Untrack:           true,
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/trackings/untrack", gotPath)
}

func TestTrackLocationRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := clientFor(srv)
	ok, err := c.TrackLocation(context.Background(), &domain.TrackLocationRequest{
		SubjectID:         "28443",
		SubjectType:       "MetroArea",
		RelationshipType:  "tracker",
		AuthenticityToken: "expired",
	})
	require.NoError(t, err)
	assert.False(t, ok)
}
