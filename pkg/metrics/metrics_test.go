package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPodSynced(t *testing.T) {
	m := NewDeployMetrics()
	m.PodSynced(nil)
	m.PodSynced(nil)
	m.PodSynced(errors.New("rsync failed"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.podSyncs.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.podSyncs.WithLabelValues(ResultFailure)))
}

func TestObserveStage(t *testing.T) {
	m := NewDeployMetrics()
	m.ObserveStage(StageBuild, time.Now().Add(-2*time.Second))

	assert.Equal(t, 1, testutil.CollectAndCount(m.stageDuration, "swatchdog_deploy_stage_duration_seconds"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *DeployMetrics
	assert.NotPanics(t, func() {
		m.ObserveStage(StageSync, time.Now())
		m.PodSynced(nil)
	})
}

func TestPush(t *testing.T) {
	var path, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewDeployMetrics()
	m.PodSynced(nil)
	require.NoError(t, m.Push(context.Background(), srv.URL, ""))
	assert.Equal(t, "/metrics/job/swatchdog_deploy", path)
	assert.NotEmpty(t, body)
}

func TestPushFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewDeployMetrics().Push(context.Background(), srv.URL, "job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "push metrics to")
}
