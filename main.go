/*
Lantern renders a fixed Halloween tableau: a cauldron, a straw bale,
two pumpkins, a witch hat and a bat, lit by moonlight.
*/
package main

import (
	"flag"

	"github.com/spaghettifunk/lantern/engine"
	"github.com/spaghettifunk/lantern/engine/config"
)

func main() {
	configPath := flag.String("config", "lantern.toml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	e, err := engine.New(cfg)
	if err != nil {
		panic(err)
	}

	if err := e.Initialize(); err != nil {
		panic(err)
	}

	if err := e.Run(); err != nil {
		panic(err)
	}
}
