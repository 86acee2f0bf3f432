package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/squeeze/internal/adapters/cssmin"    //nolint:depguard // Wired in app layer
	"go.trai.ch/squeeze/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/squeeze/internal/adapters/jsmin"     //nolint:depguard // Wired in app layer
	"go.trai.ch/squeeze/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/squeeze/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/squeeze/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/squeeze/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ConfigNodeID is the unique identifier for the process configuration Graft node.
	ConfigNodeID graft.ID = "app.config"
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entry points need from the dependency graph.
type Components struct {
	App      *App
	Logger   ports.Logger
	Reporter *report.Reporter
}

func init() {
	graft.Register(graft.Node[domain.Config]{
		ID:        ConfigNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Config, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return domain.Config{}, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
			}
			return domain.NewConfig(cwd), nil
		},
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ConfigNodeID,
			fs.NodeID,
			cssmin.NodeID,
			jsmin.NodeID,
			report.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			report.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[*report.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log, Reporter: reporter}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	styles, err := graft.Dep[*cssmin.Minifier](ctx)
	if err != nil {
		return nil, err
	}

	scripts, err := graft.Dep[*jsmin.Minifier](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[*report.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, fsys, Transformers{Style: styles, Script: scripts}, reporter, tracer, w, log), nil
}
