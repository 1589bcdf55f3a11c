package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/swatchdog/swatchdog/adapter/kubernetes"
	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/pkg/logger"
)

// Credentials is the cluster session token chosen for this run.
type Credentials struct {
	Token config.SecretValue
}

// NewTokenStore loads the state file and writes it back when the app stops.
func NewTokenStore(lc fx.Lifecycle, cfg config.StateConfig) (*config.TokenStore, error) {
	store := config.NewTokenStore(cfg)
	if err := store.Load(); err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Save()
		},
	})
	return store, nil
}

type CredentialsParams struct {
	fx.In
	Ctx     context.Context
	Options Options
	Store   *config.TokenStore
	Source  domain.TokenSource
}

func NewCredentials(params CredentialsParams) Credentials {
	return Credentials{Token: ResolveToken(params.Ctx, params.Options.Token, params.Store, params.Source)}
}

// ResolveToken picks the session token: the explicit one, then the one the cluster CLI is
// logged in with. The cached token is used only when the CLI has no session. Whatever is
// resolved replaces the cached value so a stale token never outlives a fresh login.
// A CLI failure is not fatal here; the cluster check reports missing credentials.
func ResolveToken(ctx context.Context, explicit config.SecretValue, store *config.TokenStore, source domain.TokenSource) config.SecretValue {
	log := logger.Logger(ctx)
	token := explicit
	if token.IsZero() {
		live, err := source.WhoAmIToken(ctx)
		if err != nil {
			cached := store.Get(config.EETokenKey)
			if cached.IsZero() {
				log.Warn().Err(err).Msg("no cluster token given and the cluster CLI has no session")
				return ""
			}
			log.Warn().Err(err).Msg("cluster CLI has no session, using the cached token")
			return cached
		}
		token = config.SecretValue(live)
	}
	if store.Get(config.EETokenKey).Value() != token.Value() {
		log.Debug().Msgf("caching token %s", token)
		store.Set(config.EETokenKey, token)
	}
	return token
}

func NewClusterAdapter(cfg config.ClusterConfig, creds Credentials) (domain.ClusterAdapter, error) {
	return kubernetes.NewK8SAdapter(kubernetes.Options{
		KubeConfigPath: cfg.KubeConfigPath,
		Context:        cfg.Context,
		Namespace:      cfg.Namespace,
		InCluster:      cfg.InCluster,
		Token:          creds.Token,
		CacheTTL:       cfg.PodCacheTTL,
	})
}
