//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Help

const (
	versionPkg    = "github.com/okdaichi/metro/internal/version"
	defaultConfig = "configs/config.metro.yaml"
)

// Help displays available mage targets
func Help() error {
	fmt.Println("📖 metro - Metro journey planner")
	fmt.Printf("   Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println()
	fmt.Println("Available targets:")
	fmt.Println()
	fmt.Println("  🔨 Build & Install:")
	fmt.Println("    mage build        - Build metro binary (version from git)")
	fmt.Println("    mage install      - Install metro to $GOPATH/bin")
	fmt.Println("    mage clean        - Clean build artifacts")
	fmt.Println()
	fmt.Println("  🧪 Development:")
	fmt.Println("    mage test         - Run all tests")
	fmt.Println("    mage testVerbose  - Run tests with verbose output")
	fmt.Println("    mage cover        - Run tests with coverage report")
	fmt.Println("    mage fmt          - Format code with go fmt")
	fmt.Println("    mage vet          - Run go vet for static analysis")
	fmt.Println("    mage lint         - Run golangci-lint (if installed)")
	fmt.Println("    mage check        - Run fmt, vet, and test")
	fmt.Println()
	fmt.Println("  🚇 Runtime:")
	fmt.Println("    mage shell        - Start the interactive menu")
	fmt.Println("    mage stations     - List the sample network's stations")
	fmt.Println()
	fmt.Println("  ℹ️  Info:")
	fmt.Println("    mage -l           - List all targets")
	fmt.Println("    mage help         - Show this help")
	fmt.Println()
	return nil
}

// ldflags injects version metadata into internal/version.
func ldflags() string {
	version := "dev"
	if out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && out != "" {
		version = out
	}
	commit := "none"
	if out, err := sh.Output("git", "rev-parse", "--short", "HEAD"); err == nil && out != "" {
		commit = out
	}
	date := time.Now().UTC().Format(time.RFC3339)

	return strings.Join([]string{
		"-X " + versionPkg + ".version=" + version,
		"-X " + versionPkg + ".commit=" + commit,
		"-X " + versionPkg + ".date=" + date,
	}, " ")
}

// Build builds the metro binary
func Build() error {
	fmt.Println("🔨 Building metro binary...")

	binaryName := "metro"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}

	// Ensure build directory exists
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}

	cmd := exec.Command("go", "build", "-ldflags", ldflags(), "-o", "./bin/"+binaryName, ".")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return err
	}

	fmt.Println("✅ Built: bin/" + binaryName)
	return nil
}

// Install installs the metro binary to $GOPATH/bin
func Install() error {
	fmt.Println("📦 Installing metro to $GOPATH/bin...")

	cmd := exec.Command("go", "install", "-ldflags", ldflags(), ".")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return err
	}

	fmt.Println("✅ Installed: metro")
	fmt.Println("   Run with: metro shell -config " + defaultConfig)
	return nil
}

// Test runs all tests
func Test() error {
	fmt.Println("🧪 Running tests...")

	cmd := exec.Command("go", "test", "./...", "-count=1")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// TestVerbose runs all tests with verbose output
func TestVerbose() error {
	fmt.Println("🧪 Running tests (verbose)...")

	cmd := exec.Command("go", "test", "./...", "-v", "-count=1")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Cover runs all tests and prints per-function coverage
func Cover() error {
	fmt.Println("📊 Running tests with coverage...")

	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	profile := "bin/coverage.out"

	if err := sh.RunV("go", "test", "./...", "-count=1", "-coverprofile="+profile); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+profile)
}

// Fmt formats all Go code
func Fmt() error {
	fmt.Println("✨ Formatting code...")

	cmd := exec.Command("go", "fmt", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Vet runs go vet for static analysis
func Vet() error {
	fmt.Println("🔍 Running go vet...")

	cmd := exec.Command("go", "vet", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Lint runs golangci-lint if installed
func Lint() error {
	fmt.Println("🔎 Running golangci-lint...")

	// Check if golangci-lint is installed
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("⚠️  golangci-lint not found, skipping...")
		fmt.Println("   Install: https://golangci-lint.run/usage/install/")
		return nil
	}

	cmd := exec.Command("golangci-lint", "run", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Check runs fmt, vet, and test
func Check() error {
	fmt.Println("🔍 Running checks...")
	mg.Deps(Fmt, Vet, Test)
	fmt.Println("✅ All checks passed!")
	return nil
}

// Shell starts the interactive menu on the sample network
func Shell() error {
	fmt.Println("🚇 Starting metro shell...")
	fmt.Println("   Config: " + defaultConfig)
	fmt.Println()

	cmd := exec.Command("go", "run", ".", "shell", "-config", defaultConfig)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Stations lists the stations of the sample network
func Stations() error {
	return sh.RunV("go", "run", ".", "stations", "-config", defaultConfig)
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("🧹 Cleaning build artifacts...")

	if err := sh.Rm("bin"); err != nil {
		fmt.Println("⚠️  No bin directory to clean")
	} else {
		fmt.Println("   Removed: bin/")
	}

	fmt.Println("✅ Cleanup complete!")
	return nil
}
