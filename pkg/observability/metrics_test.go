package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/voie"
	"github.com/aretw0/voie/internal/logging"
	"github.com/aretw0/voie/pkg/domain"
	"github.com/aretw0/voie/pkg/observability"
)

func states() voie.Option {
	return voie.WithStates(
		domain.StateSpec{Name: "app", Path: "/", Redirect: domain.RedirectTo("app.home")},
		domain.StateSpec{Name: "app.home", Path: "home"},
		domain.StateSpec{Name: "app.about", Path: "about"},
	)
}

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	eng, err := voie.New(states(), voie.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, eng.Go(ctx, domain.Target{Name: "app"}))
	require.NoError(t, eng.Go(ctx, domain.Target{Name: "app.about"}))
	require.Error(t, eng.Go(ctx, domain.Target{Name: "ghost"}))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StateEnters.WithLabelValues("app")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StateEnters.WithLabelValues("app.home")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StateLeaves.WithLabelValues("app.home")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.StateLeaves.WithLabelValues("app")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Redirects.WithLabelValues("app", "app.home")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Transitions.WithLabelValues("committed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Transitions.WithLabelValues("failed")))

	count, err := testutil.GatherAndCount(reg, "voie_transition_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug, "text")

	metrics := observability.NewMetrics(nil)
	hooks := domain.Combine(observability.LoggingHooks(logger), metrics.Hooks())

	eng, err := voie.New(states(), voie.WithLifecycleHooks(hooks))
	require.NoError(t, err)
	require.NoError(t, eng.Go(context.Background(), domain.Target{Name: "app"}))

	out := buf.String()
	assert.Contains(t, out, "transition_start")
	assert.Contains(t, out, "state=app.home")
	assert.Contains(t, out, "destination=app.home")
	assert.Contains(t, out, "redirect")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Transitions.WithLabelValues("committed")))
}
