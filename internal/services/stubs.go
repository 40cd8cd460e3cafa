package services

import (
	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/config"
	"github.com/goval-community/homeval/internal/goval"
)

// Null accepts everything and does nothing.
type Null struct {
	actor.BaseService
}

// Snapshot acknowledges filesystem snapshot requests. Files are already on
// disk, so there is nothing to do.
type Snapshot struct {
	actor.BaseService
}

func (s *Snapshot) Message(_ *actor.ChannelInfo, cmd goval.Command, _ int32) (goval.Body, error) {
	if _, ok := cmd.Body.(*goval.FsSnapshot); ok {
		return &goval.Ok{}, nil
	}
	return nil, nil
}

// DotReplit serves the loaded .replit.
type DotReplit struct {
	actor.BaseService

	dotReplit *config.DotReplit
}

func (s *DotReplit) Message(_ *actor.ChannelInfo, cmd goval.Command, _ int32) (goval.Body, error) {
	if _, ok := cmd.Body.(*goval.DotReplitGetRequest); !ok {
		return nil, nil
	}
	dr := &goval.DotReplit{
		Language:   s.dotReplit.Language,
		Entrypoint: s.dotReplit.Entrypoint,
		Hidden:     s.dotReplit.Hidden,
	}
	if len(s.dotReplit.Run) > 0 {
		dr.Run = &goval.Exec{Args: s.dotReplit.Run, Env: s.dotReplit.Env}
	}
	return &goval.DotReplitGetResponse{DotReplit: dr}, nil
}

// Toolchain reports the run options and nix modules of the workspace.
type Toolchain struct {
	actor.BaseService

	dotReplit *config.DotReplit
}

func (s *Toolchain) Message(info *actor.ChannelInfo, cmd goval.Command, _ int32) (goval.Body, error) {
	switch cmd.Body.(type) {
	case *goval.NixModulesGetRequest:
		return &goval.NixModulesGetResponse{}, nil
	case *goval.ToolchainGetRequest:
		return &goval.ToolchainGetResponse{Configs: &goval.ToolchainConfigs{
			Entrypoint: s.dotReplit.Entrypoint,
			Runs: []goval.RunOption{{
				ID:       "homeval/test",
				Name:     "Test",
				Language: s.dotReplit.Language,
			}},
		}}, nil
	default:
		info.Logger().Debug("unrecognized toolchain command %s", goval.BodyName(cmd.Body))
		return nil, nil
	}
}
