//go:build raylib

package main

import (
	"graphics-prototyper/internal/graphics"
	"graphics-prototyper/internal/graphics/rlbackend"
)

func newWindowSystem() graphics.WindowSystem {
	return rlbackend.New()
}
