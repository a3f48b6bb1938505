package metricsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type gAIMetrics struct {
	MID                      int64 `gorm:"primaryKey;autoIncrement;column:mid"`
	FleetOptimizationScore   int
	TrafficFlowEfficiency    int
	SignalTimingOptimization int
	CongestionReduction      int
	EmergencyResponseTime    int
	TropicalStatus           string
	PatternRecognition       bool
	RouteOptimization        int
	PredictionAnalysis       bool
	RecordedAt               time.Time
}

func (gm *gAIMetrics) TableName() string {
	return "ai_metrics"
}

func (gm *gAIMetrics) Model() *model.AIMetrics {
	return &model.AIMetrics{
		ID:                       gm.MID,
		FleetOptimizationScore:   gm.FleetOptimizationScore,
		TrafficFlowEfficiency:    gm.TrafficFlowEfficiency,
		SignalTimingOptimization: gm.SignalTimingOptimization,
		CongestionReduction:      gm.CongestionReduction,
		EmergencyResponseTime:    gm.EmergencyResponseTime,
		Tropical: model.TropicalOptimization{
			Status:             gm.TropicalStatus,
			PatternRecognition: gm.PatternRecognition,
			RouteOptimization:  gm.RouteOptimization,
			PredictionAnalysis: gm.PredictionAnalysis,
		},
		RecordedAt: gm.RecordedAt,
	}
}

type gSystemHealth struct {
	HID                  int64 `gorm:"primaryKey;autoIncrement;column:hid"`
	Uptime               float64
	ResponseTime         int
	DataProcessingSpeed  int
	NetworkStatus        string
	ProcessingThroughput int
	CPUUsage             int `gorm:"column:cpu_usage"`
	MemoryUsage          int
	RecordedAt           time.Time
}

func (gh *gSystemHealth) TableName() string {
	return "system_health"
}

func (gh *gSystemHealth) Model() *model.SystemHealth {
	return &model.SystemHealth{
		ID:                   gh.HID,
		Uptime:               gh.Uptime,
		ResponseTime:         gh.ResponseTime,
		DataProcessingSpeed:  gh.DataProcessingSpeed,
		NetworkStatus:        model.NetworkStatus(gh.NetworkStatus),
		ProcessingThroughput: gh.ProcessingThroughput,
		CPUUsage:             gh.CPUUsage,
		MemoryUsage:          gh.MemoryUsage,
		RecordedAt:           gh.RecordedAt,
	}
}

// Migrate creates or updates the AI metrics and system health tables.
func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gAIMetrics{}, &gSystemHealth{})
}

// LatestAIMetrics returns the most recently recorded snapshot, or a
// nil model when nothing has been recorded yet.
func LatestAIMetrics[Q postgres.Queryer](ctx context.Context, q Q) (*model.AIMetrics, error) {
	gdb := q.GORM(ctx)
	var gms []gAIMetrics
	if err := gdb.Order("mid desc").Limit(1).Find(&gms).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gms) == 0 {
		return nil, nil
	}
	return gms[0].Model(), nil
}

// LatestSystemHealth returns the most recently recorded snapshot, or a
// nil model when nothing has been recorded yet.
func LatestSystemHealth[Q postgres.Queryer](ctx context.Context, q Q) (*model.SystemHealth, error) {
	gdb := q.GORM(ctx)
	var ghs []gSystemHealth
	if err := gdb.Order("hid desc").Limit(1).Find(&ghs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(ghs) == 0 {
		return nil, nil
	}
	return ghs[0].Model(), nil
}

func RecordAIMetrics[Q postgres.Queryer](ctx context.Context, q Q, m *model.AIMetrics) error {
	gdb := q.GORM(ctx)
	gm := &gAIMetrics{
		FleetOptimizationScore:   m.FleetOptimizationScore,
		TrafficFlowEfficiency:    m.TrafficFlowEfficiency,
		SignalTimingOptimization: m.SignalTimingOptimization,
		CongestionReduction:      m.CongestionReduction,
		EmergencyResponseTime:    m.EmergencyResponseTime,
		TropicalStatus:           m.Tropical.Status,
		PatternRecognition:       m.Tropical.PatternRecognition,
		RouteOptimization:        m.Tropical.RouteOptimization,
		PredictionAnalysis:       m.Tropical.PredictionAnalysis,
		RecordedAt:               m.RecordedAt,
	}
	if err := gdb.Create(gm).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	m.ID = gm.MID
	return nil
}

func RecordSystemHealth[Q postgres.Queryer](ctx context.Context, q Q, h *model.SystemHealth) error {
	gdb := q.GORM(ctx)
	gh := &gSystemHealth{
		Uptime:               h.Uptime,
		ResponseTime:         h.ResponseTime,
		DataProcessingSpeed:  h.DataProcessingSpeed,
		NetworkStatus:        string(h.NetworkStatus),
		ProcessingThroughput: h.ProcessingThroughput,
		CPUUsage:             h.CPUUsage,
		MemoryUsage:          h.MemoryUsage,
		RecordedAt:           h.RecordedAt,
	}
	if err := gdb.Create(gh).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	h.ID = gh.HID
	return nil
}
