package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type ClusterConfig struct {
	KubeConfigPath string        `mapstructure:"kubeconfig"`
	Context        string        `mapstructure:"context"`
	Namespace      string        `mapstructure:"namespace"`
	InCluster      bool          `mapstructure:"in_cluster"`
	CLI            string        `mapstructure:"cli"`
	PodCacheTTL    time.Duration `mapstructure:"pod_cache_ttl"`
}

type BuildConfig struct {
	Wrapper          string `mapstructure:"wrapper"`
	BuildDirProperty string `mapstructure:"build_dir_property"`
	ArtifactSubdir   string `mapstructure:"artifact_subdir"`
}

type SyncConfig struct {
	RemotePath string `mapstructure:"remote_path"`
	Strategy   string `mapstructure:"strategy"`
}

type SelectorConfig struct {
	Binary string `mapstructure:"binary"`
}

type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url"`
	Job            string `mapstructure:"job"`
}

type StateConfig struct {
	Path string `mapstructure:"path"`
}

type DeployConfig struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Cluster  ClusterConfig  `mapstructure:"cluster"`
	Build    BuildConfig    `mapstructure:"build"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Selector SelectorConfig `mapstructure:"selector"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	State    StateConfig    `mapstructure:"state"`
}

var (
	deployCfg *DeployConfig
)

func GetConfig() *DeployConfig {
	return deployCfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("cluster.cli", "oc")
	v.SetDefault("cluster.pod_cache_ttl", 5*time.Minute)
	v.SetDefault("build.wrapper", "./gradlew")
	v.SetDefault("build.build_dir_property", "buildDir")
	v.SetDefault("build.artifact_subdir", filepath.Join("classes", "java", "main"))
	v.SetDefault("sync.remote_path", "/deployments/")
	v.SetDefault("sync.strategy", "rsync")
	v.SetDefault("selector.binary", "fzf")
	v.SetDefault("metrics.job", "swatchdog_deploy")
	v.SetDefault("state.path", filepath.Join(DefaultConfigDir(), "state.toml"))
}

// InitDeployConfig reads the deploy configuration. A missing config file is not an error;
// every setting has a default and can be overridden with a SWATCH_ prefixed variable.
func InitDeployConfig(configName string, configPath string) (DeployConfig, error) {
	var cfg DeployConfig
	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "swatchdog"
	}
	viper.AddConfigPath(DefaultConfigDir())
	viper.AddConfigPath(".")
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("SWATCH")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(viper.GetViper())

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "read deploy config")
		}
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "decode deploy config")
	}
	deployCfg = &cfg
	return cfg, nil
}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".swatchdog"
	}
	return filepath.Join(dir, "swatchdog")
}
