package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/uptrace/go-clickhouse/ch"

	"songkick/facade/config"
	"songkick/facade/domain"
)

var clickHouseDB *ch.DB

// InitClickHouse initializes the ClickHouse database connection
func InitClickHouse(cfg *config.ClickHouseConfig) error {
	dsn := cfg.GetClickHouseDSN()

	// Connect without TLS since ClickHouse native protocol doesn't use TLS by default
	db := ch.Connect(
		ch.WithDSN(dsn),
		ch.WithInsecure(true),
	)

	ctx := context.Background()

	// Initialize request_logs table
	if err := InitRequestLogsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to initialize request_logs table: %w", err)
	}

	clickHouseDB = db
	log.Println("ClickHouse connection established successfully")

	return nil
}

// CloseClickHouse closes the ClickHouse database connection
func CloseClickHouse() error {
	if clickHouseDB != nil {
		if err := clickHouseDB.Close(); err != nil {
			return fmt.Errorf("failed to close ClickHouse connection: %w", err)
		}
		log.Println("ClickHouse connection closed")
	}
	return nil
}

// InitRequestLogsTable creates the request_logs table if it doesn't exist
func InitRequestLogsTable(ctx context.Context, db *ch.DB) error {
	_, err := db.NewCreateTable().
		Model((*RequestLog)(nil)).
		Engine("MergeTree()").
		Order("requested_at, operation").
		IfNotExists().
		Exec(ctx)

	return err
}

// ClickHouseInitialized reports whether a ClickHouse connection was established
func ClickHouseInitialized() bool {
	return clickHouseDB != nil
}

// ClickHouseHealthCheck verifies that the ClickHouse connection is alive
func ClickHouseHealthCheck(ctx context.Context) error {
	if clickHouseDB == nil {
		return fmt.Errorf("ClickHouse connection is not initialized")
	}
	return clickHouseDB.Ping(ctx)
}

// GetClickHouseDB returns the ClickHouse database instance
func GetClickHouseDB() ClickHouseDB {
	return ClickHouseDB{clickHouseDB}
}

// RequestLog represents the request_logs table structure for the ClickHouse ORM
type RequestLog struct {
	ch.CHModel `ch:"table:request_logs,partition:toYYYYMMDD(requested_at)"`

	Operation      string    `ch:"operation,lc"`
	Outcome        string    `ch:"outcome,lc"`
	UpstreamStatus int32     `ch:"upstream_status"`
	DurationMS     int64     `ch:"duration_ms"`
	RequestedAt    time.Time `ch:"requested_at"`
}

// RequestLogColumnar: request logs in columnar format for batch inserts
type RequestLogColumnar struct {
	ch.CHModel `ch:"table:request_logs,partition:toYYYYMMDD(requested_at),columnar"`

	Operation      []string    `ch:"operation,lc"`
	Outcome        []string    `ch:"outcome,lc"`
	UpstreamStatus []int32     `ch:"upstream_status"`
	DurationMS     []int64     `ch:"duration_ms"`
	RequestedAt    []time.Time `ch:"requested_at"`
}

// SaveRequestLogs saves a batch of usage records using the native columnar
// insert format, column-by-column as arrays
func (c ClickHouseDB) SaveRequestLogs(ctx context.Context, records []domain.UsageRecord) error {
	if c.DB == nil {
		return fmt.Errorf("database connection is nil")
	}

	if len(records) == 0 {
		return fmt.Errorf("no records to insert")
	}

	batchSize := len(records)

	operations := make([]string, 0, batchSize)
	outcomes := make([]string, 0, batchSize)
	statuses := make([]int32, 0, batchSize)
	durations := make([]int64, 0, batchSize)
	requestedAt := make([]time.Time, 0, batchSize)

	for _, record := range records {
		operations = append(operations, record.Operation)
		outcomes = append(outcomes, record.Outcome)
		statuses = append(statuses, int32(record.UpstreamStatus))
		durations = append(durations, record.DurationMS)
		requestedAt = append(requestedAt, record.RequestedAt)
	}

	columnarModel := &RequestLogColumnar{
		Operation:      operations,
		Outcome:        outcomes,
		UpstreamStatus: statuses,
		DurationMS:     durations,
		RequestedAt:    requestedAt,
	}

	_, err := c.DB.NewInsert().
		Model(columnarModel).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to columnar insert request logs: %w", err)
	}

	return nil
}

type UsageMetricResult struct {
	// The "Bucket" holds the group name (e.g., "2026-08-23 10:00:00" or "location_search")
	Bucket        string  `ch:"bucket"`
	TotalRequests uint64  `ch:"total_requests"`
	FailedCount   uint64  `ch:"failed_count"`
	AvgDurationMS float64 `ch:"avg_duration_ms"`
}

// GetUsageMetrics retrieves aggregated usage metrics from the request_logs table
func (c ClickHouseDB) GetUsageMetrics(ctx context.Context, request domain.UsageMetricRequest) ([]UsageMetricResult, error) {
	var results []UsageMetricResult

	// Determine the grouping expression against an allowlist.
	// Prevents SQL injection from caller-supplied group_by values.
	var groupExpr string
	if request.GroupBy != nil {
		switch *request.GroupBy {
		case "hour":
			groupExpr = "toString(toStartOfHour(requested_at))"
		case "day":
			groupExpr = "toString(toStartOfDay(requested_at))"
		case "week":
			groupExpr = "toString(toStartOfWeek(requested_at))"
		case "month":
			groupExpr = "toString(toStartOfMonth(requested_at))"
		case "operation":
			groupExpr = "operation"
		case "outcome":
			groupExpr = "outcome"
		default:
			// Unknown group falls back to a single total bucket
		}
	}

	query := c.NewSelect().TableExpr("request_logs")

	if groupExpr != "" {
		query = query.ColumnExpr("? AS bucket", ch.Safe(groupExpr))
	} else {
		query = query.ColumnExpr("'total' AS bucket")
	}
	query = query.
		ColumnExpr("count() AS total_requests").
		ColumnExpr("countIf(outcome != 'ok') AS failed_count").
		ColumnExpr("avg(duration_ms) AS avg_duration_ms")

	if request.Operation != nil && *request.Operation != "" {
		query = query.Where("operation = ?", *request.Operation)
	}
	if request.From != nil {
		query = query.Where("requested_at >= ?", time.Unix(*request.From, 0))
	}
	if request.To != nil {
		query = query.Where("requested_at <= ?", time.Unix(*request.To, 0))
	}
	if groupExpr != "" {
		query = query.GroupExpr(groupExpr)
		query = query.OrderExpr("bucket ASC")
	}

	err := query.Scan(ctx, &results)
	if err != nil {
		return nil, err
	}

	return results, nil
}

type ClickHouseDB struct {
	*ch.DB
}
