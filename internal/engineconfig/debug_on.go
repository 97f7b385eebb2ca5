//go:build debug

package engineconfig

const debugBuild = true
