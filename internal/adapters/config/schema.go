package config

import (
	"time"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Workfile is the structure of memo.work.yaml.
type Workfile struct {
	GroupID    string            `yaml:"groupId"`
	Version    string            `yaml:"version"`
	Properties map[string]string `yaml:"properties"`
	Modules    []string          `yaml:"modules"`
}

// Projectfile is the structure of memo.yaml.
type Projectfile struct {
	GroupID      string            `yaml:"groupId"`
	ArtifactID   string            `yaml:"artifactId"`
	Version      string            `yaml:"version"`
	Packaging    string            `yaml:"packaging"`
	Properties   map[string]string `yaml:"properties"`
	Dependencies []DependencyDTO   `yaml:"dependencies"`
	Build        BuildDTO          `yaml:"build"`
	Plugins      []PluginDTO       `yaml:"plugins"`
}

// DependencyDTO is a dependency declaration.
type DependencyDTO struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`
	Type       string `yaml:"type"`
	Classifier string `yaml:"classifier"`
	Scope      string `yaml:"scope"`
	Optional   bool   `yaml:"optional"`
	File       string `yaml:"file"`
}

// BuildDTO is the build section of a project.
type BuildDTO struct {
	Directory           string            `yaml:"directory"`
	OutputDirectory     string            `yaml:"outputDirectory"`
	TestOutputDirectory string            `yaml:"testOutputDirectory"`
	SourceDirectory     string            `yaml:"sourceDirectory"`
	TestSourceDirectory string            `yaml:"testSourceDirectory"`
	Resources           []string          `yaml:"resources"`
	TestResources       []string          `yaml:"testResources"`
	FinalName           string            `yaml:"finalName"`
	Attach              map[string]string `yaml:"attach"`
}

// PluginDTO is a plugin declaration.
type PluginDTO struct {
	GroupID       string            `yaml:"groupId"`
	ArtifactID    string            `yaml:"artifactId"`
	Version       string            `yaml:"version"`
	Configuration map[string]string `yaml:"configuration"`
	Executions    []ExecutionDTO    `yaml:"executions"`
}

// ExecutionDTO binds goals of a plugin to a phase.
type ExecutionDTO struct {
	ID            string            `yaml:"id"`
	Phase         string            `yaml:"phase"`
	Goals         []string          `yaml:"goals"`
	Configuration map[string]string `yaml:"configuration"`
	Run           Script            `yaml:"run"`
}

// Script is a command given either as one string or as a list of lines.
type Script []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Script) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = Script{node.Value}
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := node.Decode(&lines); err != nil {
			return err
		}
		*s = lines
		return nil
	default:
		return zerr.With(domain.ErrInvalidScript, "line", node.Line)
	}
}

// cacheFile is the structure of .memo/cache.yaml as decoded by viper.
type cacheFile struct {
	Enabled          bool                `mapstructure:"enabled"`
	HashAlgorithm    string              `mapstructure:"hashAlgorithm" validate:"oneof=SHA-256 XX"`
	FailFast         bool                `mapstructure:"failFast"`
	BaselineURL      string              `mapstructure:"baselineUrl" validate:"omitempty,url"`
	Save             saveDTO             `mapstructure:"save"`
	Local            localDTO            `mapstructure:"local"`
	Remote           remoteDTO           `mapstructure:"remote"`
	Input            inputDTO            `mapstructure:"input"`
	Output           outputDTO           `mapstructure:"output"`
	ExecutionControl executionControlDTO `mapstructure:"executionControl"`
}

type saveDTO struct {
	Enabled bool `mapstructure:"enabled"`
	Final   bool `mapstructure:"final"`
}

type localDTO struct {
	Location        string `mapstructure:"location"`
	MaxBuildsCached int    `mapstructure:"maxBuildsCached" validate:"min=1"`
}

type remoteDTO struct {
	Enabled      bool          `mapstructure:"enabled"`
	Transport    string        `mapstructure:"transport"`
	URL          string        `mapstructure:"url" validate:"required_if=Enabled true"`
	SaveToRemote bool          `mapstructure:"saveToRemote"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Retry        retryDTO      `mapstructure:"retry"`
}

type retryDTO struct {
	MaxRetries   int           `mapstructure:"maxRetries" validate:"min=0"`
	InitialDelay time.Duration `mapstructure:"initialDelay"`
	MaxDelay     time.Duration `mapstructure:"maxDelay"`
}

type inputDTO struct {
	Glob     string           `mapstructure:"glob"`
	Includes []string         `mapstructure:"includes"`
	Excludes []string         `mapstructure:"excludes"`
	Plugins  []pluginInputDTO `mapstructure:"plugins" validate:"dive"`
}

type pluginInputDTO struct {
	GroupID           string   `mapstructure:"groupId"`
	ArtifactID        string   `mapstructure:"artifactId" validate:"required"`
	ExcludeProperties []string `mapstructure:"excludeProperties"`
}

type outputDTO struct {
	Exclude         []string `mapstructure:"exclude"`
	AttachedOutputs []string `mapstructure:"attachedOutputs"`
}

type executionControlDTO struct {
	RunAlways        matchersDTO    `mapstructure:"runAlways"`
	IgnoreMissing    matchersDTO    `mapstructure:"ignoreMissing"`
	LogAllProperties bool           `mapstructure:"logAllProperties"`
	Reconcile        []reconcileDTO `mapstructure:"reconcile" validate:"dive"`
}

type pluginDTO struct {
	GroupID    string `mapstructure:"groupId"`
	ArtifactID string `mapstructure:"artifactId" validate:"required"`
}

type matchersDTO struct {
	Plugins    []pluginDTO    `mapstructure:"plugins" validate:"dive"`
	Executions []executionDTO `mapstructure:"executions" validate:"dive"`
	Goals      []goalsDTO     `mapstructure:"goals" validate:"dive"`
}

type executionDTO struct {
	GroupID    string   `mapstructure:"groupId"`
	ArtifactID string   `mapstructure:"artifactId" validate:"required"`
	IDs        []string `mapstructure:"ids" validate:"min=1"`
}

type goalsDTO struct {
	GroupID    string   `mapstructure:"groupId"`
	ArtifactID string   `mapstructure:"artifactId" validate:"required"`
	Goals      []string `mapstructure:"goals" validate:"min=1"`
}

type reconcileDTO struct {
	GroupID    string       `mapstructure:"groupId"`
	ArtifactID string       `mapstructure:"artifactId" validate:"required"`
	Goal       string       `mapstructure:"goal" validate:"required"`
	Reconciles []trackedDTO `mapstructure:"reconciles" validate:"dive"`
	Logs       []string     `mapstructure:"logs"`
	NoLogs     []string     `mapstructure:"nologs"`
	LogAll     bool         `mapstructure:"logAll"`
}

type trackedDTO struct {
	PropertyName string `mapstructure:"propertyName" validate:"required"`
	DefaultValue string `mapstructure:"defaultValue"`
	SkipValue    string `mapstructure:"skipValue"`
}
