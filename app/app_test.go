package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/service"
)

func newStore(t *testing.T) *config.TokenStore {
	store := config.NewTokenStore(config.StateConfig{Path: filepath.Join(t.TempDir(), "state.toml")})
	require.NoError(t, store.Load())
	return store
}

func TestResolveTokenPrefersExplicit(t *testing.T) {
	store := newStore(t)
	source := domain.NewMockTokenSource(t)

	token := ResolveToken(context.Background(), "flag-token", store, source)
	assert.Equal(t, "flag-token", token.Value())
	assert.Equal(t, "flag-token", store.Get(config.EETokenKey).Value())
	source.AssertNotCalled(t, "WhoAmIToken", mock.Anything)
}

func TestResolveTokenFallsBackToCache(t *testing.T) {
	store := newStore(t)
	store.Set(config.EETokenKey, "cached")
	source := domain.NewMockTokenSource(t)
	source.EXPECT().WhoAmIToken(mock.Anything).Return("", errors.New("not logged in")).Once()

	assert.Equal(t, "cached", ResolveToken(context.Background(), "", store, source).Value())
	assert.Equal(t, "cached", store.Get(config.EETokenKey).Value())
}

func TestResolveTokenLiveSessionReplacesStaleCache(t *testing.T) {
	store := newStore(t)
	store.Set(config.EETokenKey, "sha256~expired")
	source := domain.NewMockTokenSource(t)
	source.EXPECT().WhoAmIToken(mock.Anything).Return("sha256~live", nil).Once()

	assert.Equal(t, "sha256~live", ResolveToken(context.Background(), "", store, source).Value())
	assert.Equal(t, "sha256~live", store.Get(config.EETokenKey).Value())
}

func TestResolveTokenExplicitOverwritesCache(t *testing.T) {
	store := newStore(t)
	store.Set(config.EETokenKey, "cached")
	source := domain.NewMockTokenSource(t)

	assert.Equal(t, "fresh", ResolveToken(context.Background(), "fresh", store, source).Value())
	assert.Equal(t, "fresh", store.Get(config.EETokenKey).Value())
	source.AssertNotCalled(t, "WhoAmIToken", mock.Anything)
}

func TestResolveTokenQueriesCLI(t *testing.T) {
	store := newStore(t)
	source := domain.NewMockTokenSource(t)
	source.EXPECT().WhoAmIToken(mock.Anything).Return("sha256~live", nil).Once()

	assert.Equal(t, "sha256~live", ResolveToken(context.Background(), "", store, source).Value())
	assert.Equal(t, "sha256~live", store.Get(config.EETokenKey).Value())
}

func TestResolveTokenCLIFailure(t *testing.T) {
	store := newStore(t)
	source := domain.NewMockTokenSource(t)
	source.EXPECT().WhoAmIToken(mock.Anything).Return("", errors.New("not logged in")).Once()

	assert.True(t, ResolveToken(context.Background(), "", store, source).IsZero())
	assert.False(t, store.Has(config.EETokenKey))
}

func TestNewClusterAdapterWithoutKubeconfig(t *testing.T) {
	t.Setenv("KUBECONFIG", "")
	t.Setenv("HOME", t.TempDir())

	_, err := NewClusterAdapter(config.ClusterConfig{KubeConfigPath: "/does/not/exist/kubeconfig"}, Credentials{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClusterUnreachable)
}

func TestTokenStoreSavedOnStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.toml")
	lc := fxtest.NewLifecycle(t)

	store, err := NewTokenStore(lc, config.StateConfig{Path: path})
	require.NoError(t, err)
	store.Set(config.EETokenKey, "tok")
	lc.RequireStart().RequireStop()

	reloaded := config.NewTokenStore(config.StateConfig{Path: path})
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "tok", reloaded.Get(config.EETokenKey).Value())
}

func TestMetricsPushedOnStop(t *testing.T) {
	var pushed atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pushed.Store(true)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	lc := fxtest.NewLifecycle(t)
	m := NewMetrics(lc, config.MetricsConfig{PushgatewayURL: srv.URL, Job: "test"})
	m.PodSynced(nil)
	lc.RequireStart().RequireStop()
	assert.True(t, pushed.Load())
}

func TestGraphIsComplete(t *testing.T) {
	err := fx.ValidateApp(
		fx.Supply(Options{}),
		fx.Provide(func() context.Context { return context.Background() }),
		ConfigModule(config.DeployConfig{}),
		ServiceModule(AdapterModule()),
		fx.Invoke(func(*service.Service) {}),
	)
	require.NoError(t, err)
}
