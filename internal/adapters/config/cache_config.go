package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// ConfigPathKey is the override key that selects the cache configuration file.
const ConfigPathKey = "configPath"

// EnvPrefix prefixes every environment override, e.g. MEMO_FAILFAST.
const EnvPrefix = "MEMO"

var validate = validator.New()

var (
	_ ports.CacheConfig       = (*CacheConfig)(nil)
	_ ports.CacheConfigLoader = (*CacheConfigLoader)(nil)
)

// CacheConfigLoader creates CacheConfig instances.
type CacheConfigLoader struct {
	Logger ports.Logger
}

// NewCacheConfigLoader creates a new CacheConfigLoader.
func NewCacheConfigLoader(logger ports.Logger) *CacheConfigLoader {
	return &CacheConfigLoader{Logger: logger}
}

// Load implements ports.CacheConfigLoader.
func (l *CacheConfigLoader) Load(root string, overrides map[string]any) ports.CacheConfig {
	return NewCacheConfig(root, overrides, l.Logger)
}

// CacheConfig is the viper backed cache configuration of a session.
type CacheConfig struct {
	root      string
	overrides map[string]any
	logger    ports.Logger

	once     sync.Once
	state    domain.CacheState
	settings domain.CacheSettings
}

// NewCacheConfig creates a configuration for the reactor at root. Nothing is read until Initialize.
func NewCacheConfig(root string, overrides map[string]any, logger ports.Logger) *CacheConfig {
	return &CacheConfig{root: root, overrides: overrides, logger: logger}
}

// Initialize reads the configuration file, the environment and the overrides exactly once.
// A missing file yields the defaults. A file that cannot be read, decoded or
// validated disables the cache for the session.
func (c *CacheConfig) Initialize() domain.CacheState {
	c.once.Do(func() {
		settings, err := c.load()
		if err != nil {
			c.logger.Error(err)
			c.logger.Warn("Cache is disabled because its configuration is invalid")
			c.state = domain.CacheDisabled
			return
		}

		c.settings = settings
		if !settings.Enabled {
			c.logger.Info("Cache is disabled")
			c.state = domain.CacheDisabled
			return
		}
		c.state = domain.CacheInitialized
	})
	return c.state
}

func (c *CacheConfig) configPath() string {
	path := domain.DefaultCacheConfigPath()
	if p, ok := c.overrides[ConfigPathKey].(string); ok && p != "" {
		path = p
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.root, path)
	}
	return path
}

func (c *CacheConfig) load() (domain.CacheSettings, error) {
	v := viper.New()
	setDefaults(v, domain.DefaultCacheSettings())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := c.configPath()
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return domain.CacheSettings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
	case !os.IsNotExist(statErr):
		return domain.CacheSettings{}, zerr.With(zerr.Wrap(statErr, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	for key, value := range c.overrides {
		if key != ConfigPathKey {
			v.Set(key, value)
		}
	}

	var file cacheFile
	if err := v.Unmarshal(&file); err != nil {
		return domain.CacheSettings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
	}
	if err := validate.Struct(file); err != nil {
		return domain.CacheSettings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
	}
	return file.settings(c.root), nil
}

func setDefaults(v *viper.Viper, d domain.CacheSettings) {
	v.SetDefault("enabled", d.Enabled)
	v.SetDefault("hashAlgorithm", d.HashAlgorithm)
	v.SetDefault("failFast", d.FailFast)
	v.SetDefault("baselineUrl", d.BaselineURL)
	v.SetDefault("save.enabled", d.Save.Enabled)
	v.SetDefault("save.final", d.Save.Final)
	v.SetDefault("local.location", d.Local.Location)
	v.SetDefault("local.maxBuildsCached", d.Local.MaxBuildsCached)
	v.SetDefault("remote.enabled", d.Remote.Enabled)
	v.SetDefault("remote.transport", d.Remote.Transport)
	v.SetDefault("remote.url", d.Remote.URL)
	v.SetDefault("remote.saveToRemote", d.Remote.SaveToRemote)
	v.SetDefault("remote.timeout", d.Remote.Timeout)
	v.SetDefault("remote.retry.maxRetries", d.Remote.Retry.MaxRetries)
	v.SetDefault("remote.retry.initialDelay", d.Remote.Retry.InitialDelay)
	v.SetDefault("remote.retry.maxDelay", d.Remote.Retry.MaxDelay)
	v.SetDefault("input.glob", d.Input.Glob)
	v.SetDefault("executionControl.logAllProperties", d.ExecutionControl.LogAllProperties)
}

func (f *cacheFile) settings(root string) domain.CacheSettings {
	location := f.Local.Location
	if !filepath.IsAbs(location) {
		location = filepath.Join(root, location)
	}

	s := domain.CacheSettings{
		Enabled:       f.Enabled,
		HashAlgorithm: f.HashAlgorithm,
		FailFast:      f.FailFast,
		BaselineURL:   f.BaselineURL,
		Save:          domain.SaveSettings{Enabled: f.Save.Enabled, Final: f.Save.Final},
		Local:         domain.LocalSettings{Location: location, MaxBuildsCached: f.Local.MaxBuildsCached},
		Remote: domain.RemoteSettings{
			Enabled:      f.Remote.Enabled,
			Transport:    f.Remote.Transport,
			URL:          f.Remote.URL,
			SaveToRemote: f.Remote.SaveToRemote,
			Timeout:      f.Remote.Timeout,
			Retry: domain.RetrySettings{
				MaxRetries:   f.Remote.Retry.MaxRetries,
				InitialDelay: f.Remote.Retry.InitialDelay,
				MaxDelay:     f.Remote.Retry.MaxDelay,
			},
		},
		Input: domain.InputSettings{
			Glob:     f.Input.Glob,
			Includes: f.Input.Includes,
			Excludes: f.Input.Excludes,
		},
		OutputExcludes:  f.Output.Exclude,
		AttachedOutputs: f.Output.AttachedOutputs,
		ExecutionControl: domain.ExecutionControl{
			RunAlways:        f.ExecutionControl.RunAlways.matchers(),
			IgnoreMissing:    f.ExecutionControl.IgnoreMissing.matchers(),
			LogAllProperties: f.ExecutionControl.LogAllProperties,
		},
	}

	for _, p := range f.Input.Plugins {
		s.Input.Plugins = append(s.Input.Plugins, domain.PluginInputSettings{
			PluginMatcher:     domain.PluginMatcher{GroupID: p.GroupID, ArtifactID: p.ArtifactID},
			ExcludeProperties: p.ExcludeProperties,
		})
	}

	for _, r := range f.ExecutionControl.Reconcile {
		rule := domain.GoalReconciliation{
			PluginMatcher: domain.PluginMatcher{GroupID: r.GroupID, ArtifactID: r.ArtifactID},
			Goal:          r.Goal,
			Logs:          r.Logs,
			NoLogs:        r.NoLogs,
			LogAll:        r.LogAll,
		}
		for _, t := range r.Reconciles {
			rule.Reconciles = append(rule.Reconciles, domain.TrackedProperty{
				PropertyName: t.PropertyName,
				DefaultValue: t.DefaultValue,
				SkipValue:    t.SkipValue,
			})
		}
		s.ExecutionControl.Reconcile = append(s.ExecutionControl.Reconcile, rule)
	}
	return s
}

func (m matchersDTO) matchers() domain.ExecutionMatchers {
	var out domain.ExecutionMatchers
	for _, p := range m.Plugins {
		out.Plugins = append(out.Plugins, domain.PluginMatcher{GroupID: p.GroupID, ArtifactID: p.ArtifactID})
	}
	for _, e := range m.Executions {
		out.Executions = append(out.Executions, domain.ExecutionIDMatcher{
			PluginMatcher: domain.PluginMatcher{GroupID: e.GroupID, ArtifactID: e.ArtifactID},
			IDs:           e.IDs,
		})
	}
	for _, g := range m.Goals {
		out.Goals = append(out.Goals, domain.GoalsMatcher{
			PluginMatcher: domain.PluginMatcher{GroupID: g.GroupID, ArtifactID: g.ArtifactID},
			Goals:         g.Goals,
		})
	}
	return out
}

// Settings returns the loaded settings.
func (c *CacheConfig) Settings() domain.CacheSettings {
	return c.settings
}

// IsEnabled reports whether Initialize succeeded with the cache enabled.
func (c *CacheConfig) IsEnabled() bool {
	return c.state == domain.CacheInitialized
}

// IsFailFast reports whether cache failures terminate the build.
func (c *CacheConfig) IsFailFast() bool {
	return c.settings.FailFast
}

// TrackedProperties returns the properties reconciled for an execution.
func (c *CacheConfig) TrackedProperties(execution *domain.MojoExecution) []domain.TrackedProperty {
	rule, _ := c.settings.ExecutionControl.ReconciliationFor(execution)
	return rule.Reconciles
}

// IsLogAllProperties reports whether every parameter of an execution is recorded.
func (c *CacheConfig) IsLogAllProperties(execution *domain.MojoExecution) bool {
	if c.settings.ExecutionControl.LogAllProperties {
		return true
	}
	rule, _ := c.settings.ExecutionControl.ReconciliationFor(execution)
	return rule.LogAll
}

// LoggedProperties returns the parameters recorded for an execution.
func (c *CacheConfig) LoggedProperties(execution *domain.MojoExecution) []string {
	rule, _ := c.settings.ExecutionControl.ReconciliationFor(execution)
	return rule.Logs
}

// NologProperties returns the parameters never recorded for an execution.
func (c *CacheConfig) NologProperties(execution *domain.MojoExecution) []string {
	rule, _ := c.settings.ExecutionControl.ReconciliationFor(execution)
	return rule.NoLogs
}

// IsForcedExecution reports whether runAlways selects the execution.
func (c *CacheConfig) IsForcedExecution(execution *domain.MojoExecution) bool {
	return c.settings.ExecutionControl.RunAlways.Matches(execution)
}

// CanIgnoreMissing reports whether ignoreMissing selects the execution.
func (c *CacheConfig) CanIgnoreMissing(execution *domain.MojoExecution) bool {
	return c.settings.ExecutionControl.IgnoreMissing.Matches(execution)
}

// EffectivePomExcludeProperties returns plugin parameters left out of the fingerprint.
func (c *CacheConfig) EffectivePomExcludeProperties(plugin domain.PluginRef) []string {
	var out []string
	for _, p := range c.settings.Input.Plugins {
		if p.Matches(plugin) {
			out = append(out, p.ExcludeProperties...)
		}
	}
	return out
}
