// mars opens the MARS mission planner: a fullscreen menu from which a
// mission is started at one of three difficulties.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/mars-mission/mars/internal/app"
	"github.com/mars-mission/mars/internal/audio"
	"github.com/mars-mission/mars/internal/config"
	"github.com/mars-mission/mars/internal/driver"
	"github.com/mars-mission/mars/internal/locale"
	"github.com/mars-mission/mars/internal/logging"
	"github.com/mars-mission/mars/internal/media"
	"github.com/mars-mission/mars/internal/menu"
	"github.com/mars-mission/mars/internal/render"
)

const themeVolume = 0.5

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if media.IsAssetError(err) {
			fmt.Fprintln(os.Stderr, "check the [assets] and [audio] paths in the config file")
		}
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		logLevel   string
		lang       string
		windowed   bool
		mute       bool
	)

	flagSet := pflag.NewFlagSet("mars", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "mars.toml", "path to the TOML config file")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.StringVar(&lang, "lang", "", "interface language (BCP 47 tag)")
	flagSet.BoolVar(&windowed, "windowed", false, "run in a window instead of fullscreen")
	flagSet.BoolVar(&mute, "mute", false, "disable all sound")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flagSet.Changed("lang") {
		cfg.Locale.Lang = lang
	}
	if windowed {
		cfg.Window.Fullscreen = false
	}
	if mute {
		cfg.Audio.Muted = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	sink := logging.New(cfg.Log.Level, cfg.Log.Path, os.Stdout)
	defer sink.Close()
	log := sink.Logger
	if len(cfg.Undecoded) > 0 {
		log.Warn("unknown config keys ignored", "path", configPath, "keys", cfg.Undecoded)
	}

	catalog, err := locale.New(cfg.Locale.Lang)
	if err != nil {
		return err
	}
	fonts, err := render.NewFonts()
	if err != nil {
		return err
	}
	images, err := render.LoadImages(map[media.ImageID]string{
		media.ImageBackground: cfg.Assets.Background,
	}, log)
	if err != nil {
		return err
	}
	player, err := audio.New(cfg.Audio, log)
	if err != nil {
		return err
	}

	window := &driver.Window{}
	a := app.New(window, menu.Deps{
		Metrics: fonts,
		Audio:   player,
		Strings: catalog,
		Log:     log,
	})
	game := driver.New(a, window, render.NewCanvas(fonts, images), log)

	if cfg.Audio.Music != "" {
		player.Play(media.SoundTheme, themeVolume)
	}

	if err := game.Run(cfg.Window, cfg.Loop); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	log.Info("exited", "plays", player.Plays())
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `mars: MARS mission planner.

Reads mars.toml from the working directory unless --config names another
file. A missing config file runs with defaults.

Usage:
  mars [flags]

Flags:
%s`, flagSet.FlagUsages())
}
