package shell

import (
	"os"
	"strings"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Interpolate replaces ${name} expressions in s. Names lookup cannot
// resolve are kept verbatim so that the shell can still expand its own
// variables.
func Interpolate(s string, lookup func(name string) (string, bool)) (string, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}

	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
		end := strings.IndexByte(s[start:], '}')
		if end < 0 {
			return "", zerr.With(domain.ErrUnterminatedExpression, "expression", s[start:])
		}
		end += start

		b.WriteString(s[:start])
		name := s[start+2 : end]
		if v, ok := lookup(name); ok {
			b.WriteString(v)
		} else {
			b.WriteString(s[start : end+1])
		}
		s = s[end+1:]
	}
}

// projectLookup resolves built-in project expressions, then project
// properties, then env.* variables.
func projectLookup(p *domain.Project) func(string) (string, bool) {
	return func(name string) (string, bool) {
		switch name {
		case "project.groupId":
			return p.GroupID, true
		case "project.artifactId":
			return p.ArtifactID, true
		case "project.version":
			return p.Version, true
		case "project.packaging":
			return p.PackagingOrDefault(), true
		case "project.basedir", "basedir":
			return p.Dir, true
		case "project.build.directory":
			return p.BuildDir(), true
		case "project.build.outputDirectory":
			return p.Abs(p.Build.OutputDirectory), true
		case "project.build.testOutputDirectory":
			return p.Abs(p.Build.TestOutputDirectory), true
		case "project.build.sourceDirectory":
			return p.Abs(p.Build.SourceDirectory), true
		case "project.build.testSourceDirectory":
			return p.Abs(p.Build.TestSourceDirectory), true
		case "project.build.finalName":
			return p.FinalName(), true
		}
		if v, ok := p.Property(name); ok {
			return v, true
		}
		if env, ok := strings.CutPrefix(name, "env."); ok {
			return os.LookupEnv(env)
		}
		return "", false
	}
}
