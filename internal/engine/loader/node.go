package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dataloader/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dataloader/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dataloader/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dataloader/internal/adapters/parser" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dataloader/internal/adapters/vault"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports"
)

// NodeID is the unique identifier for the loader Graft node.
const NodeID graft.ID = "engine.loader"

func init() {
	graft.Register(graft.Node[ports.DocumentLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			config.SecretNodeID,
			fs.NodeID,
			vault.NodeID,
			parser.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.DocumentLoader, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			v, err := graft.Dep[ports.Vault](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[ports.DocumentParser](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			secret, err := graft.Dep[domain.VaultSecret](ctx)
			if err != nil {
				return nil, err
			}

			return New(fsys, v, p, log, Options{
				BaseDir: settings.BaseDir,
				Secret:  secret,
				Verbose: settings.Verbose,
			}), nil
		},
	})
}
