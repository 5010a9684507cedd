package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/feidom-up/ai-feidom-graphl-worker/internal/api/handlers"
	"github.com/feidom-up/ai-feidom-graphl-worker/internal/config"
	"github.com/feidom-up/ai-feidom-graphl-worker/internal/graph"
	openaiinfra "github.com/feidom-up/ai-feidom-graphl-worker/internal/infrastructure/openai"
	"github.com/feidom-up/ai-feidom-graphl-worker/internal/services/chat"
)

func main() {
	zerolog.SetGlobalLevel(config.GetLogLevel())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	handler, err := setupServer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up server")
	}

	addr := ":" + config.GetServerPort()
	log.Info().Str("addr", addr).Msg("Server starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe error")
	}
}

func setupServer() (http.Handler, error) {
	openaiService := openaiinfra.NewService(config.GetOpenAIKey())
	chatService := chat.NewService(openaiService)

	schema, err := graph.NewSchema(graph.NewResolver(chatService))
	if err != nil {
		return nil, err
	}

	return handlers.NewRouter(schema), nil
}
