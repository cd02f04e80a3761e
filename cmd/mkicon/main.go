// mkicon generates the multi-resolution application icon.
// Usage: go run ./cmd/mkicon [options] [command]
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Mavwarf/mkicon/internal/config"
	"github.com/Mavwarf/mkicon/internal/ico"
	"github.com/Mavwarf/mkicon/internal/icon"
	"github.com/Mavwarf/mkicon/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	configPath := ""
	output := ""

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --config requires a file path\n")
				os.Exit(1)
			}
		case "--out", "-o":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --out requires a file path\n")
				os.Exit(1)
			}
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) == 0 {
		runGenerate(configPath, output)
		return
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "info":
		if len(filtered) < 2 {
			fmt.Fprintf(os.Stderr, "Error: 'mkicon info' requires an .ico file\n")
			os.Exit(1)
		}
		if err := describe(os.Stdout, filtered[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "png":
		dir := "."
		if len(filtered) > 1 {
			dir = filtered[1]
		}
		runExport(configPath, output, dir)
	case "preview":
		runPreview(loadConfig(configPath, output))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", filtered[0])
		fmt.Fprintf(os.Stderr, "Run 'mkicon help' for usage.\n")
		os.Exit(1)
	}
}

func runGenerate(configPath, output string) {
	cfg := loadConfig(configPath, output)
	if err := writeIcon(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(configPath, output, dir string) {
	cfg := loadConfig(configPath, output)
	written, err := exportPNGs(cfg, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range written {
		fmt.Println(p)
	}
}

// loadConfig resolves the config file, applies the --out override and
// validates the result. Exits on any error.
func loadConfig(configPath, output string) config.Config {
	cfg, err := resolveConfig(configPath, output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func resolveConfig(configPath, output string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if output != "" {
		cfg.Output = output
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// frames renders one image per configured size, smallest first.
func frames(cfg config.Config) ([]image.Image, error) {
	p, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	return icon.DrawAll(cfg.Sizes, p), nil
}

// generate renders every frame and writes the icon container to cfg.Output.
func generate(cfg config.Config) error {
	imgs, err := frames(cfg)
	if err != nil {
		return err
	}
	return ico.WriteFile(cfg.Output, imgs)
}

// writeIcon generates the icon and reports the written path on w.
func writeIcon(w io.Writer, cfg config.Config) error {
	if err := generate(cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s created!\n", cfg.Output)
	return nil
}

// build returns the encoded icon container without touching the disk.
func build(cfg config.Config) ([]byte, error) {
	imgs, err := frames(cfg)
	if err != nil {
		return nil, err
	}
	return ico.Marshal(imgs)
}

// exportPNGs writes each frame to dir as icon-<size>.png and returns the
// written paths in size order.
func exportPNGs(cfg config.Config, dir string) ([]string, error) {
	imgs, err := frames(cfg)
	if err != nil {
		return nil, err
	}
	written := make([]string, 0, len(imgs))
	for i, img := range imgs {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return written, fmt.Errorf("encoding %dpx frame: %w", cfg.Sizes[i], err)
		}
		path := filepath.Join(dir, paths.FrameName(cfg.Sizes[i]))
		if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// describe prints the directory of an existing .ico file.
func describe(w io.Writer, path string) error {
	data, entries, err := ico.ReadFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d bytes, %d images\n", path, len(data), len(entries))
	for i, e := range entries {
		fmt.Fprintf(w, "  #%d  %3dx%-3d  %2d bpp  %-3s  %7d bytes @ %d\n",
			i, e.Width, e.Height, e.BitCount, e.Format(), e.Size, e.Offset)
	}
	return nil
}

func printVersion() {
	fmt.Printf("mkicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("mkicon %s - Generate the multi-resolution application icon\n", version)
	fmt.Println(`
Usage:
  mkicon [options]                 Write icon.ico (16, 32, 48, 64, 128, 256 px)
  mkicon [options] <command>

Options:
  --out, -o <path>       Output file (default: icon.ico)
  --config, -c <path>    Path to mkicon.json

Commands:
  info <file.ico>        List the images inside an icon file
  png [dir]              Write each frame as icon-<size>.png
  preview                Show the icon in the system tray
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>     (explicit)
  2. ./mkicon.json       (project)
  3. built-in defaults

Examples:
  mkicon                         Write ./icon.ico
  mkicon -o build/app.ico        Write to another path
  mkicon info icon.ico           Inspect the result
  mkicon png previews            Export PNG frames to ./previews`)
}
