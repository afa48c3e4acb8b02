package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"songkick/facade/database"
	"songkick/facade/domain"
)

var _ domain.SongkickService = &songkickService{}

type songkickService struct {
	provider domain.Provider
	cache    database.ResponseCache
	batcher  *UsageBatcher // nil when the usage log is disabled
}

func (s *songkickService) SearchLocations(ctx context.Context, req *domain.LocationSearchRequest) (*domain.LocationSearchResponse, error) {
	cacheKey := req.CacheKey()
	var cached domain.LocationSearchResponse
	if s.cacheLookup(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	start := time.Now()
	locations, err := s.provider.SearchLocations(ctx, req.LocationName)
	s.record(domain.OpLocationSearch, start, err)
	if err != nil {
		return nil, err
	}

	resp := &domain.LocationSearchResponse{
		Success:   true,
		Message:   "Locations retrieved successfully",
		Locations: locations,
	}
	s.cacheStore(ctx, cacheKey, resp)
	return resp, nil
}

func (s *songkickService) ListEvents(ctx context.Context, req *domain.EventsRequest) (*domain.EventsResponse, error) {
	cacheKey := req.CacheKey()
	var cached domain.EventsResponse
	if s.cacheLookup(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	start := time.Now()
	events, err := s.provider.ListEvents(ctx, req.Page)
	s.record(domain.OpEvents, start, err)
	if err != nil {
		return nil, err
	}

	resp := &domain.EventsResponse{
		Success: true,
		Message: "Events retrieved successfully",
		Page:    req.Page,
		Events:  events,
	}
	s.cacheStore(ctx, cacheKey, resp)
	return resp, nil
}

func (s *songkickService) GetEventDetails(ctx context.Context, req *domain.EventDetailsRequest) (*domain.EventDetailsResponse, error) {
	cacheKey := req.CacheKey()
	var cached domain.EventDetailsResponse
	if s.cacheLookup(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	start := time.Now()
	details, err := s.provider.EventDetails(ctx, req.EventURL)
	s.record(domain.OpEventDetails, start, err)
	if err != nil {
		return nil, err
	}

	resp := &domain.EventDetailsResponse{
		Success:      true,
		Message:      "Event details retrieved successfully",
		EventDetails: details,
	}
	s.cacheStore(ctx, cacheKey, resp)
	return resp, nil
}

// TrackLocation is a mutation on upstream state, so it bypasses the cache
func (s *songkickService) TrackLocation(ctx context.Context, req *domain.TrackLocationRequest) (*domain.TrackLocationResponse, error) {
	start := time.Now()
	ok, err := s.provider.TrackLocation(ctx, req)
	s.record(domain.OpTrackLocation, start, err)
	if err != nil {
		return nil, err
	}

	if !ok {
		return &domain.TrackLocationResponse{Status: "failed"}, nil
	}
	return &domain.TrackLocationResponse{Status: "ok"}, nil
}

func (s *songkickService) GetUsageMetrics(ctx context.Context, req *domain.UsageMetricRequest) (*domain.UsageMetricResponse, error) {
	db := database.GetClickHouseDB()
	if db.DB == nil {
		return nil, fmt.Errorf("usage log is not enabled")
	}

	metrics, err := db.GetUsageMetrics(ctx, *req)
	if err != nil {
		return &domain.UsageMetricResponse{
			Success: false,
			Message: "Failed to retrieve metrics: " + err.Error(),
			Metrics: nil,
		}, err
	}

	results := make([]domain.UsageMetric, len(metrics))
	for i, m := range metrics {
		results[i] = domain.UsageMetric{
			Bucket:        m.Bucket,
			TotalRequests: m.TotalRequests,
			FailedCount:   m.FailedCount,
			AvgDurationMS: m.AvgDurationMS,
		}
	}

	return &domain.UsageMetricResponse{
		Success: true,
		Message: "Metrics retrieved successfully",
		Metrics: results,
	}, nil
}

// cacheLookup unmarshals a cached response into out. Any hit is served as-is;
// a miss or decode failure falls through to the upstream fetch.
func (s *songkickService) cacheLookup(ctx context.Context, key string, out any) bool {
	payload, found := s.cache.Get(ctx, key)
	if !found {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Printf("SongkickService: discarding undecodable cache entry %q: %v", key, err)
		return false
	}
	return true
}

func (s *songkickService) cacheStore(ctx context.Context, key string, resp any) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, payload)
}

// record enqueues a usage record for the completed operation. A full buffer
// drops the record; usage logging never fails a request.
func (s *songkickService) record(op string, start time.Time, err error) {
	if s.batcher == nil {
		return
	}

	outcome := "ok"
	upstreamStatus := 0
	if err != nil {
		var formatErr *domain.UpstreamFormatError
		var upstreamErr *domain.UpstreamError
		switch {
		case errors.As(err, &formatErr):
			outcome = "upstream_format_error"
		case errors.As(err, &upstreamErr):
			outcome = "upstream_error"
			upstreamStatus = upstreamErr.StatusCode
		default:
			outcome = "error"
		}
	}

	record := domain.UsageRecord{
		Operation:      op,
		Outcome:        outcome,
		UpstreamStatus: upstreamStatus,
		DurationMS:     time.Since(start).Milliseconds(),
		RequestedAt:    start,
	}

	if enqueueErr := s.batcher.Enqueue(record); enqueueErr != nil {
		log.Printf("SongkickService: dropping usage record for %s: %v", op, enqueueErr)
	}
}

// NewSongkickService returns a domain.SongkickService over the given provider.
// The cache and batcher are optional; zero values disable them.
func NewSongkickService(provider domain.Provider, cache database.ResponseCache, batcher *UsageBatcher) (domain.SongkickService, error) {
	if provider == nil {
		return nil, fmt.Errorf("upstream provider cannot be nil")
	}

	if batcher != nil {
		batcher.Start()
	}

	return &songkickService{
		provider: provider,
		cache:    cache,
		batcher:  batcher,
	}, nil
}

// ShutdownSongkickService gracefully shuts down a service if it supports shutdown
func ShutdownSongkickService(service domain.SongkickService) error {
	if srv, ok := service.(interface{ Shutdown() error }); ok {
		return srv.Shutdown()
	}
	return nil
}

// Shutdown flushes and stops the usage batcher
func (s *songkickService) Shutdown() error {
	if s.batcher != nil {
		return s.batcher.Shutdown()
	}
	return nil
}
