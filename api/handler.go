package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"songkick/facade/domain"
	"songkick/facade/validations"
)

var _ SongkickHandler = &songkickHandler{nil}

type songkickHandler struct {
	songkickService domain.SongkickService
}

// failure maps an error to its HTTP status and taxonomy category
func failure(err error) (status int, category string) {
	var invalidErr *domain.InvalidInputError
	if errors.As(err, &invalidErr) {
		return fiber.StatusBadRequest, "invalid_input"
	}
	var formatErr *domain.UpstreamFormatError
	if errors.As(err, &formatErr) {
		return fiber.StatusBadGateway, "upstream_format_error"
	}
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return fiber.StatusBadGateway, "upstream_error"
	}
	return fiber.StatusInternalServerError, "internal_error"
}

// SearchLocations handles the location search passthrough
// @Summary Search locations
// @Description Search the upstream provider for metro areas matching a name
// @Tags Locations
// @Produce json
// @Param location_name query string true "Location name to search for"
// @Success 200 {object} domain.LocationSearchResponse "Matching locations (possibly empty)"
// @Failure 400 {object} domain.LocationSearchResponse "Invalid input"
// @Failure 502 {object} domain.LocationSearchResponse "Upstream failure"
// @Router /location/search [get]
func (h songkickHandler) SearchLocations(ctx *fiber.Ctx) error {
	req := domain.LocationSearchRequest{
		LocationName: ctx.Query("location_name"),
	}

	if err := validations.ValidateLocationSearchRequest(&req); err != nil {
		status, category := failure(err)
		return ctx.Status(status).JSON(domain.LocationSearchResponse{
			Success: false,
			Message: err.Error(),
			Error:   category,
		})
	}

	resp, err := h.songkickService.SearchLocations(ctx.Context(), &req)
	if err != nil {
		status, category := failure(err)
		return ctx.Status(status).JSON(domain.LocationSearchResponse{
			Success: false,
			Message: err.Error(),
			Error:   category,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// ListEvents handles the paginated events listing passthrough
// @Summary List events
// @Description List one page of tracked-artist events from the upstream provider
// @Tags Events
// @Produce json
// @Param page query int true "Page number (starting at 1)"
// @Success 200 {object} domain.EventsResponse "One page of events"
// @Failure 400 {object} domain.EventsResponse "Invalid input"
// @Failure 502 {object} domain.EventsResponse "Upstream failure"
// @Router /events [get]
func (h songkickHandler) ListEvents(ctx *fiber.Ctx) error {
	pageStr := ctx.Query("page")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(domain.EventsResponse{
			Success: false,
			Message: "invalid input: page must be an integer",
			Error:   "invalid_input",
		})
	}

	req := domain.EventsRequest{Page: page}
	if err := validations.ValidateEventsRequest(&req); err != nil {
		status, category := failure(err)
		return ctx.Status(status).JSON(domain.EventsResponse{
			Success: false,
			Message: err.Error(),
			Error:   category,
		})
	}

	resp, err := h.songkickService.ListEvents(ctx.Context(), &req)
	if err != nil {
		status, category := failure(err)
		return ctx.Status(status).JSON(domain.EventsResponse{
			Success: false,
			Message: err.Error(),
			Error:   category,
			Page:    page,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// GetEventDetails handles the event detail passthrough
// @Summary Get event details
// @Description Fetch a single event page and return its mapped detail record
// @Tags Events
// @Produce json
// @Param event_url query string true "Absolute URL of the event page"
// @Success 200 {object} domain.EventDetailsResponse "Event detail record"
// @Failure 400 {object} domain.EventDetailsResponse "Invalid input"
// @Failure 502 {object} domain.EventDetailsResponse "Upstream failure"
// @Router /event [get]
func (h songkickHandler) GetEventDetails(ctx *fiber.Ctx) error {
	req := domain.EventDetailsRequest{
		EventURL: ctx.Query("event_url"),
	}

	if err := validations.ValidateEventDetailsRequest(&req); err != nil {
		status, category := failure(err)
		return ctx.Status(status).JSON(domain.EventDetailsResponse{
			Success: false,
			Message: err.Error(),
			Error:   category,
		})
	}

	resp, err := h.songkickService.GetEventDetails(ctx.Context(), &req)
	if err != nil {
		status, category := failure(err)
		return ctx.Status(status).JSON(domain.EventDetailsResponse{
			Success: false,
			Message: err.Error(),
			Error:   category,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// TrackLocation forwards a track/untrack form to the upstream provider
// @Summary Track or untrack a location
// @Description Forward the tracking form fields returned by a location search
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body domain.TrackLocationRequest true "Tracking form fields"
// @Success 200 {object} domain.TrackLocationResponse "Tracking outcome"
// @Failure 400 {object} domain.TrackLocationResponse "Invalid input"
// @Failure 502 {object} domain.TrackLocationResponse "Upstream failure"
// @Router /location/track [post]
func (h songkickHandler) TrackLocation(ctx *fiber.Ctx) error {
	var req domain.TrackLocationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(domain.TrackLocationResponse{
			Status:  "failed",
			Message: "Invalid request body: " + err.Error(),
		})
	}

	if err := validations.ValidateTrackLocationRequest(&req); err != nil {
		status, _ := failure(err)
		return ctx.Status(status).JSON(domain.TrackLocationResponse{
			Status:  "failed",
			Message: err.Error(),
		})
	}

	resp, err := h.songkickService.TrackLocation(ctx.Context(), &req)
	if err != nil {
		status, _ := failure(err)
		return ctx.Status(status).JSON(domain.TrackLocationResponse{
			Status:  "failed",
			Message: err.Error(),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// GetUsageMetrics retrieves aggregated facade usage
// @Summary GET aggregated usage metrics
// @Description Query aggregated facade usage with filtering and grouping
// @Tags Metrics
// @Produce json
// @Param operation query string false "Operation filter (location_search, events, event_details, track_location)"
// @Param from query int false "Start timestamp (Unix seconds)"
// @Param to query int false "End timestamp (Unix seconds)"
// @Param group_by query string false "Group by field (hour, day, week, month, operation, outcome)"
// @Success 200 {object} domain.UsageMetricResponse "Metrics retrieved successfully"
// @Failure 400 {object} domain.UsageMetricResponse "Invalid request"
// @Failure 500 {object} domain.UsageMetricResponse "Internal server error"
// @Router /metrics [get]
func (h songkickHandler) GetUsageMetrics(ctx *fiber.Ctx) error {
	var req domain.UsageMetricRequest

	if operation := ctx.Query("operation"); operation != "" {
		req.Operation = &operation
	}

	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := strconv.ParseInt(fromStr, 10, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(domain.UsageMetricResponse{
				Success: false,
				Message: "Invalid 'from' parameter: " + err.Error(),
				Error:   "invalid_input",
			})
		}
		req.From = &from
	}

	if toStr := ctx.Query("to"); toStr != "" {
		to, err := strconv.ParseInt(toStr, 10, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(domain.UsageMetricResponse{
				Success: false,
				Message: "Invalid 'to' parameter: " + err.Error(),
				Error:   "invalid_input",
			})
		}
		req.To = &to
	}

	if groupBy := ctx.Query("group_by"); groupBy != "" {
		req.GroupBy = &groupBy
	}

	if err := validations.ValidateUsageMetricRequest(&req); err != nil {
		status, category := failure(err)
		return ctx.Status(status).JSON(domain.UsageMetricResponse{
			Success: false,
			Message: err.Error(),
			Error:   category,
		})
	}

	resp, err := h.songkickService.GetUsageMetrics(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(domain.UsageMetricResponse{
			Success: false,
			Message: "Internal server error: " + err.Error(),
			Error:   "internal_error",
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

func NewSongkickHandler(songkickService domain.SongkickService) SongkickHandler {
	return &songkickHandler{songkickService: songkickService}
}
