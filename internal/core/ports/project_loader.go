package ports

import "go.trai.ch/memo/internal/core/domain"

// ProjectLoader reads the reactor descriptors.
//
//go:generate mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// DiscoverRoot walks up from cwd to the directory holding memo.work.yaml or memo.yaml.
	DiscoverRoot(cwd string) (string, error)

	// Load reads the reactor rooted at root and returns the validated graph.
	Load(root string) (*domain.Reactor, error)
}
