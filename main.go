package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"multisearch/internal/browser"
	"multisearch/internal/catalog"
	"multisearch/internal/config"
	"multisearch/internal/dispatch"
	"multisearch/internal/eventbus"
	"multisearch/internal/ui"
	"multisearch/internal/ui/services/selection"
)

func main() {
	// Parse command line arguments
	var configPath string
	var initialQuery string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&initialQuery, "q", "", "Pre-fill the search query")
	flag.Parse()

	// Remaining args become the initial query
	if initialQuery == "" && flag.NArg() > 0 {
		initialQuery = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("multisearch.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	// Build the engine catalog: compiled-in defaults plus custom engines
	// from the config, immutable from here on
	cat := catalog.NewDefault(cfg.CustomEngines()...)

	// Initialize services
	selectionSvc := selection.NewService(bus, cat.Has)
	dispatcher := dispatch.NewDispatcher(cat, browser.NewExecLauncher(), bus)

	// One-shot ambient theme read; the config may override it
	darkBackground := lipgloss.HasDarkBackground()

	// Create UI model
	uiModel := ui.NewModel(cfg, cat, selectionSvc, dispatcher, bus, darkBackground, initialQuery)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events into the UI loop
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventDispatchCompleted, forward)
	bus.Subscribe(eventbus.EventConfigSaved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Log dispatches for the status line's "see multisearch.log" pointer
	bus.Subscribe(eventbus.EventDispatchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DispatchCompletedEvent); ok {
			log.Printf("Dispatched %q to %d engine(s), %d failed", event.Query, len(event.URLs), event.Failed)
		}
	})

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Persist the selection and theme as the next session's defaults
	if cfg.UISettings.AutosaveOnExit {
		cfg.DefaultSelected = selectionSvc.SelectedNames()
		if uiModel.State().DarkTheme {
			cfg.Theme = config.ThemeDark
		} else {
			cfg.Theme = config.ThemeLight
		}
		if err := saveConfig(configSvc, cfg, configPath); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	// Cleanup
	close(eventChan)
}

// loadConfig loads the config from the override path or the default
// location, falling back to defaults on any failure.
func loadConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Printf("Error loading config from %s: %v", path, err)
			return config.DefaultConfig()
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

func saveConfig(configSvc config.ConfigService, cfg *config.Config, path string) error {
	if path != "" {
		return configSvc.SaveToPath(cfg, path)
	}
	return configSvc.Save(cfg)
}
