package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finbay_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PurchasesTotal counts completed purchases by item category.
	PurchasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finbay_purchases_total",
		Help: "Total number of completed purchases by category",
	}, []string{"category"})

	// PinsIssuedTotal counts password-reset pins issued.
	PinsIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finbay_reset_pins_issued_total",
		Help: "Total number of password-reset pins issued",
	})

	// ReviewsTotal counts submitted reviews by rating.
	ReviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finbay_reviews_total",
		Help: "Total number of submitted reviews by rating",
	}, []string{"rating"})
)

// InitMetrics builds the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
