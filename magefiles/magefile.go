//go:build mage

// Package main provides build targets for gnodrop using Mage.
//
// Package dbg compiles to different types depending on the "debug" build tag,
// so the test suite has to run once per build mode to cover both renditions.
//
// Usage:
//
//	mage test:all       Run tests without and with the debug tag
//	mage test:release   Run tests without the debug tag
//	mage test:debug     Run tests with the debug tag
//	mage test:race      Run both modes under the race detector
//	mage vet            Run go vet in both build modes
//	mage lint           Run golangci-lint
package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binGo = "go"

// Test groups test targets by build mode.
type Test mg.Namespace

// All runs the tests in release mode, then in debug mode.
func (Test) All() {
	mg.SerialDeps(Test.Release, Test.Debug)
}

// Release runs the tests without the debug build tag.
func (Test) Release() error {
	return sh.RunV(binGo, "test", "./...")
}

// Debug runs the tests with the debug build tag.
func (Test) Debug() error {
	return sh.RunV(binGo, "test", "-tags", "debug", "./...")
}

// Race runs both build modes under the race detector.
// Leak detection reports arrive on the runtime's cleanup goroutine,
// which makes this worth running separately.
func (Test) Race() error {
	if err := sh.RunV(binGo, "test", "-race", "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "test", "-race", "-tags", "debug", "./...")
}

// Vet runs go vet in both build modes.
func Vet() error {
	if err := sh.RunV(binGo, "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "vet", "-tags", "debug", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}
