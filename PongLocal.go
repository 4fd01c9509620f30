package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShawnSWu/Pong/audio"
	"github.com/ShawnSWu/Pong/config"
	"github.com/ShawnSWu/Pong/core"
	"github.com/ShawnSWu/Pong/logger"
	"github.com/ShawnSWu/Pong/terminal"
)

// startLocal runs a two-player match on this terminal: W/S moves the left
// paddle, Up/Down the right one, Esc or q quits.
func startLocal(props config.Properties) error {
	screen, err := terminal.NewScreen(props.GameWidth, props.GameHeight)
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.ScreenInitFailedMsg, err))
		return err
	}
	defer screen.Fini()
	defer recoverCrash(screen.Fini)

	seed := props.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := core.NewGame(core.Settings{
		Width:          props.GameWidth,
		Height:         props.GameHeight,
		ScoreToWin:     props.ScoreToWin,
		FreezeDuration: props.FreezeSeconds,
	}, rand.New(rand.NewSource(seed)))

	if props.Sound {
		speaker, err := audio.NewSpeaker()
		if err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.AudioUnavailableMsg, err))
		} else {
			defer speaker.Close()
		}
		game.AddListener(speaker)
	}

	clock := core.SystemClock()
	hold := time.Duration(props.KeyHoldMillis) * time.Millisecond
	keyboard := terminal.NewKeyboard(screen, hold, clock, screen.Sync)
	defer keyboard.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := core.NewLoop(game, keyboard, screen, props.FrameRate, clock)
	if err := loop.Run(ctx); err != nil {
		logger.Log.Error(fmt.Sprintf(logger.RenderFailedMsg, err))
		return err
	}

	logger.Log.Info(logger.PlayerQuitMsg)
	return nil
}
