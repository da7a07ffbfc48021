package main

import (
	"flag"
	"log"

	"chosenoffset.com/gridcrawl/internal/config"
	"chosenoffset.com/gridcrawl/internal/core/rng"
	"chosenoffset.com/gridcrawl/internal/game"
	ebitenrender "chosenoffset.com/gridcrawl/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "gridcrawl.yaml", "YAML config file (defaults are used if it does not exist)")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Loaded config from %s: %dx%d grid, %d enemies", *configPath, cfg.Grid.Width, cfg.Grid.Height, cfg.Enemies.Count)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	session := game.NewSession(cfg, rng.New(*seed))
	gameManager := game.NewManager(cfg, session, renderer, inputMgr)

	// Set up the window
	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle("Dungeon Crawler")
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.TicksPerSecond)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
	log.Println("Goodbye")
}
