//go:build !raylib

package main

import (
	"graphics-prototyper/internal/graphics"
	"graphics-prototyper/internal/graphics/glfwgl"
)

func newWindowSystem() graphics.WindowSystem {
	return glfwgl.New()
}
