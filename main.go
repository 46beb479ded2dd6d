package main

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
	"github.com/nexgen-labs/procure-agent/agent/terms"
	toolx "github.com/nexgen-labs/procure-agent/agent/tool"
	configx "github.com/nexgen-labs/procure-agent/pkg/config"
	embedderx "github.com/nexgen-labs/procure-agent/pkg/embedder"
	_ "github.com/nexgen-labs/procure-agent/pkg/logger/autoload"
	openrouterx "github.com/nexgen-labs/procure-agent/pkg/openrouter"
	procureapix "github.com/nexgen-labs/procure-agent/pkg/procureapi"
	qdrantx "github.com/nexgen-labs/procure-agent/pkg/qdrantstore"
)

func main() {
	ctx := context.Background()

	procureCfg := configx.MustNew[procureapix.Config]("PROCURE")
	gateway := procureapix.MustNew(*procureCfg)

	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	chatModel, err := openRouterCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("create chat model")
	}
	openRouterClient := openrouterx.NewClient(*openRouterCfg)
	if openRouterClient == nil {
		log.Fatal().Msg("failed to initialize openrouter client")
	}

	embedderCfg := configx.MustNew[embedderx.Config]("EMBEDDING")
	queryEmbedder, err := embedderx.NewOpenAIEmbedder(openRouterClient, *embedderCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create embedder")
	}

	qdrantCfg := configx.MustNew[qdrantx.Config]("QDRANT")
	contractStore, err := qdrantx.NewStore(*qdrantCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create qdrant store")
	}
	defer contractStore.Close()

	termsService, err := terms.NewService(ctx, chatModel, queryEmbedder, contractStore)
	if err != nil {
		log.Fatal().Err(err).Msg("create payment terms service")
	}

	infos, _ := toolx.BuildForAgent(contractx.AgentTypeProcurement, toolx.Dependencies{
		Gateway: gateway,
		Terms:   termsService,
	})
	for _, info := range infos {
		log.Info().Str("tool", info.Name).Msg("tool registered")
	}
	log.Info().Msg("procurement tool catalog ready")
}
