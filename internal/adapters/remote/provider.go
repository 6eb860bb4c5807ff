package remote

import (
	"context"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider implements ports.RemoteRepositoryProvider.
type Provider struct {
	Logger ports.Logger
}

var _ ports.RemoteRepositoryProvider = (*Provider)(nil)

// Provide selects the transport named by settings.Transport.
func (p *Provider) Provide(ctx context.Context, settings domain.RemoteSettings, failFast bool) (ports.RemoteRepository, error) {
	if !settings.Enabled {
		return Noop{}, nil
	}

	var transport ports.RemoteRepository
	switch settings.Transport {
	case domain.TransportHTTP, "":
		transport = NewHTTP(settings, p.Logger)
	case domain.TransportPostgres:
		pg, err := OpenPostgres(ctx, settings)
		if err != nil {
			return nil, err
		}
		transport = pg
	default:
		err := zerr.With(zerr.Wrap(domain.ErrUnknownTransport, domain.ErrRepositoryUnavailable.Error()), "transport", settings.Transport)
		return nil, err
	}
	return NewTolerant(transport, p.Logger, failFast), nil
}
