package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dataloader/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dataloader/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/dataloader/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dataloader/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/dataloader/internal/adapters/vault"     //nolint:depguard // Wired in app layer
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports"
	"go.trai.ch/dataloader/internal/engine/loader"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.NodeID,
			fs.NodeID,
			vault.NodeID,
			config.SecretNodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	docs, err := graft.Dep[ports.DocumentLoader](ctx)
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

	secret, err := graft.Dep[domain.VaultSecret](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(docs, fsys, v, secret, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
