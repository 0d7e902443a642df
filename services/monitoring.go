package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	MONITORING_SVC      = "monitoring_svc"
	SERVICE_NAME        = "pathwise_client"
	DEFAULT_STATUS_PORT = 2112
)

// API client metrics
var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total API requests issued by the client",
		},
		[]string{"endpoint", "method", "status"},
	)

	apiRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Gamification metrics
var (
	xpGainedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "xp_gained_total",
			Help: "Total XP awarded locally",
		},
	)

	levelUpsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "level_ups_total",
			Help: "Total level-up events",
		},
	)

	achievementsUnlockedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "achievements_unlocked_total",
			Help: "Total achievements unlocked",
		},
	)

	currentStreakDays = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "current_streak_days",
			Help: "Current daily activity streak",
		},
	)
)

func recordAPIRequest(method, endpoint, status string, duration time.Duration) {
	apiRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
	apiRequestDurationSeconds.WithLabelValues(endpoint, method, status).Observe(duration.Seconds())
}

func recordXPGained(amount int) {
	xpGainedTotal.Add(float64(amount))
}

func recordLevelUp() {
	levelUpsTotal.Inc()
}

func recordAchievementsUnlocked(count int) {
	achievementsUnlockedTotal.Add(float64(count))
}

func recordStreak(days int) {
	currentStreakDays.Set(float64(days))
}

// MonitoringService serves /ping, /status and /metrics in companion mode.
// One-shot CLI commands never start it; the collectors above still record.
type MonitoringService struct {
	context.DefaultService

	gamificationSvc *GamificationService
	tokenSvc        *TokenService

	port     int
	register *prometheus.Registry
	server   *fiber.App
}

func (svc MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Start() error {
	svc.gamificationSvc = svc.Service(GAMIFICATION_SVC).(*GamificationService)
	svc.tokenSvc = svc.Service(TOKEN_SVC).(*TokenService)

	portStr := os.Getenv("PATHWISE_STATUS_PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = DEFAULT_STATUS_PORT
	}
	svc.port = port

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reg.MustRegister(
		apiRequestsTotal,
		apiRequestDurationSeconds,
		xpGainedTotal,
		levelUpsTotal,
		achievementsUnlockedTotal,
		currentStreakDays,
	)
	svc.register = reg

	config := fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		},
	}

	svc.server = fiber.New(config)
	svc.server.Use(recover.New())

	svc.server.Get("/ping", svc.pingHandler)
	svc.server.Get("/status", svc.statusHandler)
	svc.server.Get("/metrics", svc.metricsHandler)

	log.Info().Int("port", svc.port).Msg("Status server started")
	return svc.server.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *MonitoringService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *MonitoringService) pingHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   SERVICE_NAME,
		"timestamp": time.Now().Unix(),
	})
}

func (svc *MonitoringService) statusHandler(c *fiber.Ctx) error {
	summary, err := svc.gamificationSvc.Summary()
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authenticated": svc.tokenSvc.IsAuthenticated(),
		"progression":   summary,
	})
}

func (svc *MonitoringService) metricsHandler(c *fiber.Ctx) error {
	handler := promhttp.HandlerFor(svc.register, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(handler)(c)
}
