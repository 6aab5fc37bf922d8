//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "goodtranslator"

// Default target to run when none is specified
var Default = Build

// Build compiles the goodtranslator binary
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, "./cmd/goodtranslator")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Integration runs tests that talk to real translation services
func Integration() error {
	env := map[string]string{"GOODTRANSLATOR_INTEGRATION": "1"}
	return sh.RunWithV(env, "go", "test", "-count=1", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/goodtranslator")
}

// Clean removes the built binary
func Clean() error {
	return os.RemoveAll(binary)
}
