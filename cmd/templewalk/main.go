package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/templewalk/asset"
	"github.com/lixenwraith/templewalk/audio"
	"github.com/lixenwraith/templewalk/config"
	"github.com/lixenwraith/templewalk/core"
	"github.com/lixenwraith/templewalk/engine"
	"github.com/lixenwraith/templewalk/event"
	"github.com/lixenwraith/templewalk/render"
	"github.com/lixenwraith/templewalk/terminal"
)

var (
	configFlag = flag.String("config", "", "path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/templewalk.log")
	modelFlag  = flag.String("model", "", "glTF/GLB model to load, overrides config; use -model= for the built-in scene")
	audioFlag  = flag.Bool("audio", true, "play the glide cue")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	applyFlags(&cfg)

	host, err := terminal.NewHost()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	core.SetCrashReset(host.Fini)
	defer host.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	target := render.NewTerminalTarget(host.Screen())
	ectx := engine.NewContext(cfg, target)

	if cfg.Audio.Enabled {
		cue := audio.NewCue(cfg.Audio.Volume)
		if err := cue.Initialize(); err != nil {
			log.Printf("audio: disabled: %v", err)
		} else {
			ectx.Cue = cue
			defer cue.Cleanup()
		}
	}

	if err := ectx.Build(); err != nil {
		host.Fini()
		fmt.Fprintf(os.Stderr, "scene: %v\n", err)
		return 1
	}
	w, h := host.Size()
	event.EmitResize(ectx.Queue, w, h)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	core.Go(func() { host.Poll(ctx, ectx.Queue) })

	var provider asset.Provider = asset.NewGLTFProvider()
	if cfg.Model.Path == "" {
		provider = asset.Builtin{}
	}
	asset.LoadAsync(ctx, provider, cfg.Model.Path, ectx.Queue)

	err = engine.NewLoop(ectx).Run(ctx)
	cancel()
	host.Interrupt()
	if err != nil && ctx.Err() == nil {
		log.Printf("loop: %v", err)
		return 1
	}
	return 0
}

// applyFlags lets explicitly set flags win over file and environment
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model.Path = *modelFlag
		case "audio":
			cfg.Audio.Enabled = *audioFlag
		}
	})
}
