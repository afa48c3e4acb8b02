package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"songkick/facade/buildinfo"
	"songkick/facade/database"
	"songkick/facade/domain"
)

// HealthCheck handles the /health endpoint. Redis and ClickHouse are optional
// dependencies; a disabled one reports "disabled" and does not count against
// overall health.
// @Summary Health check endpoint
// @Description Check the health status of the service and its optional dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} domain.HealthResponse "Service is healthy"
// @Success 503 {object} domain.HealthResponse "Service is unhealthy"
// @Router /health [get]
func HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	response := domain.HealthResponse{
		Timestamp: time.Now(),
		BuildInfo: buildinfo.GetInfo(),
		Services:  domain.ServiceHealthStatus{},
	}

	healthy := true

	// Check Redis health when the cache is enabled
	if !database.RedisInitialized() {
		response.Services.Redis = domain.ServiceStatus{Status: "disabled"}
	} else if err := database.RedisHealthCheck(ctx); err != nil {
		healthy = false
		response.Services.Redis = domain.ServiceStatus{
			Status:  "unhealthy",
			Message: err.Error(),
		}
	} else {
		response.Services.Redis = domain.ServiceStatus{Status: "healthy"}
	}

	// Check ClickHouse health when the usage log is enabled
	if !database.ClickHouseInitialized() {
		response.Services.ClickHouse = domain.ServiceStatus{Status: "disabled"}
	} else if err := database.ClickHouseHealthCheck(ctx); err != nil {
		healthy = false
		response.Services.ClickHouse = domain.ServiceStatus{
			Status:  "unhealthy",
			Message: err.Error(),
		}
	} else {
		response.Services.ClickHouse = domain.ServiceStatus{Status: "healthy"}
	}

	if healthy {
		response.Status = "healthy"
		return c.Status(fiber.StatusOK).JSON(response)
	}

	response.Status = "unhealthy"
	return c.Status(fiber.StatusServiceUnavailable).JSON(response)
}
