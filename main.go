package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/nabobery/google-adk-experiments/agents"
	"github.com/nabobery/google-adk-experiments/config"
	"github.com/nabobery/google-adk-experiments/core"
	"github.com/nabobery/google-adk-experiments/gemini"
	"github.com/nabobery/google-adk-experiments/news"
	"github.com/nabobery/google-adk-experiments/openai"
	"github.com/nabobery/google-adk-experiments/refine"
	"github.com/nabobery/google-adk-experiments/server"
	"github.com/nabobery/google-adk-experiments/session"
	"github.com/nabobery/google-adk-experiments/subreddit"
	"github.com/nabobery/google-adk-experiments/taskflow"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	topic := flag.String("topic", "", "run one refinement for this topic and exit")
	target := flag.String("subreddit", "", "target subreddit for -topic mode")
	maxIterations := flag.Int("max-iterations", 0, "iteration budget override for -topic mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	llm, err := newLLM(cfg)
	if err != nil {
		log.Fatal(err)
	}

	profiles, err := subreddit.LoadProfiles(cfg.Refine.ProfilesPath)
	if err != nil {
		log.Fatal(err)
	}
	provider := subreddit.NewProvider(profiles, &subreddit.SidebarScraper{})
	controller := refine.NewController(provider, llm, cfg.Refine.MaxIterations)

	if *topic != "" {
		if *target == "" {
			log.Fatal("-topic requires -subreddit")
		}
		outcome, err := controller.Run(context.Background(), *topic, *target, *maxIterations)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("state: %s (rounds: %d)\n\n%s\n", outcome.State, outcome.Rounds, outcome.Candidate.Render())
		return
	}

	store, err := session.Open(cfg.Server.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	registry := core.NewToolRegistry()
	if err := news.RegisterTools(registry); err != nil {
		log.Fatal(err)
	}
	if err := taskflow.RegisterTools(registry, store); err != nil {
		log.Fatal(err)
	}

	taskflowAgent, err := agents.NewTaskFlow(llm, registry)
	if err != nil {
		log.Fatal(err)
	}
	newsAgent, err := agents.NewNewsResearch(llm, registry)
	if err != nil {
		log.Fatal(err)
	}

	srv := server.New(controller, store, taskflowAgent, newsAgent)
	log.Printf("listening on %s", cfg.Server.Addr)
	if err := srv.Router().Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}

func newLLM(cfg config.Config) (core.LLM, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return gemini.NewGemini(cfg.LLM.APIKey, cfg.LLM.Model)
	case "openai":
		return openai.NewOpenAI(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL)
	}
	return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
}
