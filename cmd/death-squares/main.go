package main

import (
	cfg "github.com/automoto/unicorn-defense/config"
	"github.com/automoto/unicorn-defense/scenes"
)

func main() {
	scenes.Run(cfg.VariantDodge)
}
