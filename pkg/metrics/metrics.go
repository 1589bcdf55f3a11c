// Package metrics records how long each deploy stage took and how the pod syncs went.
package metrics

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "swatchdog"

// Stage names used as the stage label.
const (
	StageVerify  = "verify"
	StageProject = "project"
	StageBuild   = "build"
	StageSelect  = "select"
	StageSync    = "sync"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// DeployMetrics holds the collectors of one run on a private registry.
type DeployMetrics struct {
	registry      *prometheus.Registry
	stageDuration *prometheus.HistogramVec
	podSyncs      *prometheus.CounterVec
}

func NewDeployMetrics() *DeployMetrics {
	m := &DeployMetrics{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "deploy",
			Name:      "stage_duration_seconds",
			Help:      "Wall time spent in each deploy stage.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}, []string{"stage"}),
		podSyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "deploy",
			Name:      "pod_sync_total",
			Help:      "Code syncs attempted per target pod, by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(m.stageDuration, m.podSyncs)
	return m
}

// ObserveStage records the time elapsed since start under stage. Safe on a nil receiver.
func (m *DeployMetrics) ObserveStage(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// PodSynced counts one sync attempt. Safe on a nil receiver.
func (m *DeployMetrics) PodSynced(err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.podSyncs.WithLabelValues(result).Inc()
}

func (m *DeployMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Push sends the collected metrics to a Prometheus pushgateway.
func (m *DeployMetrics) Push(ctx context.Context, url, job string) error {
	if job == "" {
		job = "swatchdog_deploy"
	}
	err := push.New(url, job).Gatherer(m.registry).PushContext(ctx)
	if err != nil {
		return errors.WithMessagef(err, "push metrics to %s", url)
	}
	return nil
}
