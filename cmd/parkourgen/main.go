package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/grammar"
	"github.com/automoto/parkour-gen/level"
	"github.com/automoto/parkour-gen/preview"
	"github.com/automoto/parkour-gen/shared/leveldata"
	"github.com/automoto/parkour-gen/store"
	"github.com/automoto/parkour-gen/systems"
	"github.com/automoto/parkour-gen/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const appName = "parkourgen"

func main() {
	modeFlag := flag.String("mode", "chain", "Generation mode: grid or chain")
	seed := flag.Int64("seed", 0, "Generation seed (0 = config seed, or the clock)")
	configPath := flag.String("config", "", "JSON config file applied over the defaults")
	rulesPath := flag.String("rules", "", "JSON grammar rule set (empty = built-in rules)")
	tmxPath := flag.String("tmx", "", "Blockout .tmx file, or a directory of them")
	levelName := flag.String("level", "", "Level to use when -tmx is a directory (empty = first)")
	pngPath := flag.String("png", "", "Write a top-down preview PNG")
	profilePath := flag.String("profile", "", "Write a platform height profile chart")
	dbPath := flag.String("db", "", "Archive the plan in this sqlite database")
	preset := flag.String("preset", "", "Load a saved config preset")
	savePreset := flag.String("save-preset", "", "Save the effective config as a preset")
	host := flag.Bool("host", false, "Apply the plan to an entity scene and report what was spawned")
	flag.Parse()

	mode, err := level.ParseMode(*modeFlag)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}

	cfg, err := loadConfig(*configPath, *preset)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.C = cfg

	if *savePreset != "" {
		presets, err := systems.OpenPresets(appName)
		if err != nil {
			log.Fatalf("Failed to open presets: %v", err)
		}
		if err := presets.Save(*savePreset, cfg); err != nil {
			log.Fatalf("Failed to save preset %q: %v", *savePreset, err)
		}
		log.Printf("Saved preset %q", *savePreset)
	}

	rules := grammar.DefaultRuleSet()
	if *rulesPath != "" {
		data, err := os.ReadFile(*rulesPath)
		if err != nil {
			log.Fatalf("Failed to read rules: %v", err)
		}
		if rules, err = grammar.ParseRuleSet(data); err != nil {
			log.Fatalf("Invalid rules: %v", err)
		}
	}

	static, err := loadBlockout(*tmxPath, *levelName)
	if err != nil {
		log.Fatalf("Failed to load blockout: %v", err)
	}

	if *seed == 0 {
		*seed = cfg.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	gen := level.New(cfg, rules, static)
	plan, err := gen.Generate(mode, *seed)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	if err := level.Verify(plan, cfg.Grammar.Tolerance); err != nil {
		log.Fatalf("Generated plan is invalid: %v", err)
	}

	if err := level.Summarize(plan, cfg.Partition.CellLength).Write(os.Stdout); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}

	if *host {
		runHost(gen, mode, *seed, cfg.Partition.CellLength, static)
	}

	if *pngPath != "" {
		if err := writePreview(plan, *pngPath, cfg.Preview); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Wrote preview %s", *pngPath)
	}

	if *profilePath != "" {
		if err := preview.HeightProfile(plan, *profilePath); err != nil {
			log.Fatalf("Failed to write profile: %v", err)
		}
		log.Printf("Wrote height profile %s", *profilePath)
	}

	if *dbPath != "" {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := archive(ctx, *dbPath, *levelName, plan); err != nil {
			log.Fatalf("Failed to archive plan: %v", err)
		}
	}
}

// loadConfig reads the config file over the defaults, or a saved preset.
func loadConfig(path, preset string) (*config.Config, error) {
	if path != "" && preset != "" {
		return nil, fmt.Errorf("-config and -preset are mutually exclusive")
	}
	cfg := config.Default()
	if preset != "" {
		presets, err := systems.OpenPresets(appName)
		if err != nil {
			return nil, err
		}
		if cfg, err = presets.Load(preset); err != nil {
			return nil, err
		}
	}
	if path == "" {
		return cfg, nil
	}
	return config.Load(path)
}

func loadBlockout(tmxPath, levelName string) (*leveldata.CollisionData, error) {
	if tmxPath == "" {
		return nil, nil
	}
	info, err := os.Stat(tmxPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return leveldata.LoadCollisionData(os.DirFS(filepath.Dir(tmxPath)), filepath.Base(tmxPath))
	}

	levels, names, err := leveldata.LoadAllLevels(os.DirFS(tmxPath), ".")
	if err != nil {
		return nil, err
	}
	if levelName == "" {
		levelName = names[0]
	}
	data, ok := levels[levelName]
	if !ok {
		return nil, fmt.Errorf("level %q not found, have %v", levelName, names)
	}
	log.Printf("Using blockout level %q", levelName)
	return data, nil
}

func runHost(gen *level.Generator, mode level.Mode, seed int64, cellSize float64, static *leveldata.CollisionData) {
	scene := systems.NewScene(gen.Bounds(), cellSize, static)
	if _, err := systems.Regenerate(scene, gen, mode, seed); err != nil {
		log.Fatalf("Host regeneration failed: %v", err)
	}

	count := func(tag donburi.IComponentType) int {
		return donburi.NewQuery(filter.Contains(tag)).Count(scene.ECS.World)
	}
	log.Printf("Host scene: %d platforms, %d obstacles, %d buildings, %d static blocks",
		count(tags.Platform), count(tags.Obstacle), count(tags.Building), count(tags.StaticBlock))
}

func writePreview(plan *level.Plan, path string, cfg config.PreviewConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := preview.Render(plan, f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func archive(ctx context.Context, path, name string, plan *level.Plan) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.Save(ctx, name, plan)
	if err != nil {
		return err
	}
	log.Printf("Archived plan %s in %s", id, path)
	return nil
}
