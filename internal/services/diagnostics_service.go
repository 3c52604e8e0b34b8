package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"catalog/internal/config"
)

// maxReportedCollections caps the collection names listed in the report.
const maxReportedCollections = 10

// DiagnosticsReport is the body of the /test endpoint.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsService reports service and store health. Report never fails:
// every probe error is rendered into the report body instead.
type DiagnosticsService struct {
	db  *mongo.Database
	cfg config.Config
}

// NewDiagnosticsService creates a new DiagnosticsService. db may be nil when
// the store was unreachable at startup.
func NewDiagnosticsService(db *mongo.Database, cfg config.Config) *DiagnosticsService {
	return &DiagnosticsService{
		db:  db,
		cfg: cfg,
	}
}

// Report probes the store and assembles the diagnostic status.
func (s *DiagnosticsService) Report(ctx context.Context) DiagnosticsReport {
	report := DiagnosticsReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.db != nil {
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		names, err := s.db.ListCollectionNames(ctx, bson.M{})
		if err != nil {
			report.Database = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > maxReportedCollections {
				names = names[:maxReportedCollections]
			}
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	// Presence checks only; the values themselves are never exposed.
	report.DatabaseURL = presence(s.cfg.DatabaseURLSet())
	report.DatabaseName = presence(s.cfg.DatabaseNameSet())

	return report
}

func presence(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
