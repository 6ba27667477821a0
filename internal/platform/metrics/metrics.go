package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "formation"

// Metrics は書類生成と gRPC リクエストのメトリクスを保持します。
type Metrics struct {
	registry        *prometheus.Registry
	documents       *prometheus.CounterVec
	validationFails *prometheus.CounterVec
	renderDuration  *prometheus.HistogramVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New は専用レジストリにメトリクスを登録して Metrics を生成します。
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_generated_total",
			Help:      "Number of formation documents generated, by document kind and state.",
		}, []string{"kind", "state"}),
		validationFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Number of rejected formation inputs, by offending field.",
		}, []string{"field"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering a formation document to PDF.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "Number of gRPC requests, by method and status code.",
		}, []string{"method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "gRPC request latency, by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.documents,
		m.validationFails,
		m.renderDuration,
		m.requests,
		m.requestDuration,
	)
	return m
}

// DocumentGenerated は生成成功を記録します。
func (m *Metrics) DocumentGenerated(kind, state string, elapsed time.Duration) {
	m.documents.WithLabelValues(kind, state).Inc()
	m.renderDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ValidationFailed は検証エラーになった項目を記録します。
func (m *Metrics) ValidationFailed(field string) {
	m.validationFails.WithLabelValues(field).Inc()
}

// RequestHandled は gRPC リクエストの結果を記録します。
func (m *Metrics) RequestHandled(method, code string, elapsed time.Duration) {
	m.requests.WithLabelValues(method, code).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Handler は /metrics 用の HTTP ハンドラを返します。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve は listenAddr で /metrics を公開し、コンテキストがキャンセルされると停止します。
func (m *Metrics) Serve(ctx context.Context, listenAddr string, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("metrics server shutdown", zap.Error(err))
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics: serve %s: %w", listenAddr, err)
	}
	return nil
}
