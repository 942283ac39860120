/*
Minimal starter: open a window, clear it to a color every frame, and shut
down cleanly. Everything an application needs on top lives in the engine
package.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/lumen-gfx/lumen/engine"
)

func main() {
	config, err := engine.LoadConfig("lumen.toml")
	if err != nil {
		panic(err)
	}

	eng, err := engine.New(config)
	if err != nil {
		panic(err)
	}

	if err := eng.Initialize(); err != nil {
		panic(err)
	}

	// Translate SIGTERM and friends into the engine's quit event so the
	// loop winds down through the normal path.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		eng.RequestQuit()
	}()

	if err := eng.Run(); err != nil {
		panic(err)
	}

	if err := eng.Shutdown(); err != nil {
		panic(err)
	}
}
