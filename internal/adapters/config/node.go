package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	NodeID         graft.ID = "adapter.settings_loader"
	SettingsNodeID graft.ID = "adapter.settings"
	SecretNodeID   graft.ID = "adapter.vault_secret"
)

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get current working directory")
			}
			return loader.Load(cwd)
		},
	})

	graft.Register(graft.Node[domain.VaultSecret]{
		ID:        SecretNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, SettingsNodeID},
		Run: func(ctx context.Context) (domain.VaultSecret, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			secret, err := loader.ReadVaultSecret(settings)
			if err != nil {
				return nil, err
			}
			return domain.VaultSecret(secret), nil
		},
	})
}
