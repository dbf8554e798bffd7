package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	env, err := LoadEnv()
	if err != nil {
		slog.Error("startup", "err", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if env.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := LoadConfig(env.ConfigPath)
	if err != nil {
		slog.Error("startup", "err", err)
		os.Exit(1)
	}

	boards, err := LoadBoards(cfg.Snapshot)
	switch {
	case err == nil:
		slog.Info("snapshot loaded", "file", cfg.Snapshot, "boards", boards.Root.Len())
	case !errors.Is(err, fs.ErrNotExist):
		slog.Warn("snapshot ignored", "err", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(NewGame(cfg, boards)); err != nil {
		slog.Error("game exited", "err", err)
		os.Exit(1)
	}
}
