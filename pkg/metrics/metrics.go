package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbConnections   *prometheus.GaugeVec

	remindersTotal    *prometheus.CounterVec
	reminderSweeps    prometheus.Counter
	notificationsSent *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"service"}),

		dbConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		remindersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_reminders_total",
			Help: "Total number of reminder dispatch attempts by result",
		}, []string{"service", "result"}),

		reminderSweeps: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_reminder_sweeps_total",
			Help:        "Total number of reminder sweep ticks",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),

		notificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_notifications_total",
			Help: "Total number of outbound notifications by kind and result",
		}, []string{"service", "kind", "result"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(m.serviceName, status).Inc()
	m.dbQueryDuration.WithLabelValues(m.serviceName).Observe(duration.Seconds())
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, idle, inUse int) {
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
}

// IncReminder фиксирует результат отправки напоминания: sent, skipped, error
func (m *Metrics) IncReminder(result string) {
	m.remindersTotal.WithLabelValues(m.serviceName, result).Inc()
}

// IncReminderSweep фиксирует один проход планировщика напоминаний
func (m *Metrics) IncReminderSweep() {
	m.reminderSweeps.Inc()
}

// IncNotification фиксирует результат отправки уведомления
// kind: confirmation, reminder; result: sent, skipped, error
func (m *Metrics) IncNotification(kind, result string) {
	m.notificationsSent.WithLabelValues(m.serviceName, kind, result).Inc()
}
