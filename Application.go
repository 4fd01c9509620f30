package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/ShawnSWu/Pong/config"
	"github.com/ShawnSWu/Pong/logger"
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	props, err := config.ReadProperties("./", flags)
	if err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := startLocal(props); err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// recoverCrash restores the terminal before reporting a panic.
func recoverCrash(restore func()) {
	if r := recover(); r != nil {
		restore()
		logger.Log.Error(fmt.Sprintf(logger.GameCrashedMsg, r))
		fmt.Fprintf(os.Stderr, "\n"+logger.GameCrashedMsg+"\n%s\n", r, debug.Stack())
		os.Exit(1)
	}
}
