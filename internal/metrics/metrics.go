package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Inventory operation metrics
	InventoryOperationsCounter prometheus.CounterVec

	// Image upload metrics
	ImageUploadBytes prometheus.Counter

	// Inventory level metrics, refreshed on each stats query
	InventoryItemsGauge prometheus.Gauge
	InventorySKUsGauge  prometheus.Gauge
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.MetricsConfig) {
	prefix := cfg.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	InventoryOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of inventory operations",
		},
		[]string{"operation"},
	)

	ImageUploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_image_upload_bytes_total",
			Help: "Total bytes of uploaded images",
		},
	)

	InventoryItemsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_items",
			Help: "Total items in stock (sum of quantities)",
		},
	)

	InventorySKUsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_skus",
			Help: "Number of distinct tire records",
		},
	)
}

// RecordOperation increments the counter for inventory operations
func RecordOperation(operation string) {
	InventoryOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordImageUpload adds the uploaded size to the image byte counter
func RecordImageUpload(size int64) {
	ImageUploadBytes.Add(float64(size))
}

// UpdateInventoryLevels refreshes the inventory gauges
func UpdateInventoryLevels(totalItems, skuCount int64) {
	InventoryItemsGauge.Set(float64(totalItems))
	InventorySKUsGauge.Set(float64(skuCount))
}
