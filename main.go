package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/natefinch/lumberjack.v2"

	"shuttle/internal/cache"
	"shuttle/internal/config"
	"shuttle/internal/eventbus"
	"shuttle/internal/loader"
	"shuttle/internal/matcher"
	"shuttle/internal/provider"
	"shuttle/internal/session"
	"shuttle/internal/ui"
)

func main() {
	var configPath string
	var refresh bool
	var printOnly bool
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.BoolVar(&refresh, "refresh", false, "Drop the cached item list and fetch fresh")
	flag.BoolVar(&printOnly, "print", false, "Print the activated value instead of opening it")
	flag.Parse()

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", configSvc.Path(), err)
		os.Exit(1)
	}

	// Set up logging
	log.SetOutput(&lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	})
	log.Printf("Starting shuttle, config %s", configSvc.Path())

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	providers := buildProviders(cfg)
	if len(providers) == 0 {
		fmt.Fprintf(os.Stderr, "No sources configured. Add github, jenkins or file sources to %s\n", configSvc.Path())
		os.Exit(1)
	}

	itemCache := cache.New(cfg.CachePath)
	if refresh {
		if err := itemCache.Invalidate(); err != nil {
			log.Printf("Failed to invalidate cache: %v", err)
		}
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	sess := session.New(matcher.New(cfg.Matcher))
	uiModel := ui.NewModel(sess)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Forward load-phase events to the UI
	for _, eventType := range []eventbus.EventType{
		eventbus.EventLoadStarted,
		eventbus.EventLoadCompleted,
		eventbus.EventLoadFailed,
	} {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	// Start the load phase off the interactive path
	itemLoader := loader.New(loader.NewAggregator(providers), itemCache, bus)
	go func() {
		if _, err := itemLoader.Load(ctx); err != nil {
			log.Printf("Load failed: %v", err)
		}
	}()

	// Run the UI
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	m := finalModel.(*ui.Model)
	if err := m.LoadErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Loading failed: %v\n", err)
		os.Exit(1)
	}

	if value := m.Activated(); value != "" {
		log.Printf("Activated %s", value)
		if printOnly {
			fmt.Println(value)
			return
		}
		if err := openTarget(value); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", value, err)
			os.Exit(1)
		}
	}
}

// buildProviders assembles the provider list from config, in
// declaration order: GitHub sources, then Jenkins, then files.
func buildProviders(cfg *config.Config) []provider.Provider {
	var providers []provider.Provider
	for _, src := range cfg.GitHub {
		github := provider.NewGitHub(src.Org)
		if src.Endpoint != "" {
			github = provider.NewGitHubWithEndpoint(src.Org, src.Endpoint)
		}
		if src.Token != "" {
			github = github.WithToken(src.Token)
		}
		providers = append(providers, github)
	}
	for _, src := range cfg.Jenkins {
		providers = append(providers, provider.NewJenkins(src.Endpoint))
	}
	for _, path := range cfg.Files {
		providers = append(providers, provider.NewFile(path))
	}
	return providers
}
