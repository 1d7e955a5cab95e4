package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ammkrn/pretty-simple/config"
	"github.com/ammkrn/pretty-simple/doc"
	"github.com/ammkrn/pretty-simple/dsl"
	"github.com/ammkrn/pretty-simple/examples"
	"github.com/ammkrn/pretty-simple/printer"
)

// demoWidths are the line budgets the built-in demo is rendered at.
var demoWidths = []int{30, 50, 80}

func main() {
	input := flag.String("in", "", "input file path; empty renders the built-in demo")
	output := flag.String("out", "", "write rendered text to a file instead of stdout")
	mode := flag.String("mode", "expr", "input kind: expr or json")
	width := flag.Int("width", 0, "line width budget; overrides the configured width when positive")
	confPath := flag.String("config", "", "TOML config file path")
	envFile := flag.String("envfile", "", "env file loaded before reading the environment")
	debugPath := flag.String("debug", "", "document debug JSON output path")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log.SetLevel(log.InfoLevel)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(&config.Options{Path: *confPath, EnvFilePath: *envFile})
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *width > 0 {
		cfg.Width = *width
	}

	if err := run(*input, *output, *mode, *debugPath, cfg); err != nil {
		log.Fatalf("render failed: %v", err)
	}
}

// run wires parsing, document construction and rendering together.
func run(inputPath, outputPath, mode, debugPath string, cfg *config.Config) error {
	opts := printer.Options{Indent: cfg.Indent}

	if inputPath == "" {
		return runDemo(mode, opts)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input %s: %w", inputPath, err)
	}

	d, err := buildDoc(mode, data, opts)
	if err != nil {
		return err
	}

	if debugPath != "" {
		if err := writeDebug(d, debugPath); err != nil {
			return err
		}
	}

	rendered := d.Render(cfg.Width)
	log.WithFields(log.Fields{
		"mode":  mode,
		"width": cfg.Width,
		"bytes": len(rendered),
	}).Debug("rendered document")

	if outputPath == "" {
		fmt.Println(rendered)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(rendered+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	log.WithFields(log.Fields{"path": outputPath}).Info("wrote rendered output")
	return nil
}

// buildDoc turns raw input bytes into a document according to the mode.
func buildDoc(mode string, data []byte, opts printer.Options) (doc.Doc, error) {
	switch mode {
	case "expr":
		expr, err := dsl.Parse(bytes.NewReader(data))
		if err != nil {
			return doc.Doc{}, fmt.Errorf("parse expression: %w", err)
		}
		return printer.Expr(expr, opts), nil
	case "json":
		value, err := printer.ParseJSON(bytes.NewReader(data))
		if err != nil {
			return doc.Doc{}, fmt.Errorf("parse input: %w", err)
		}
		return printer.Value(value, opts), nil
	default:
		return doc.Doc{}, fmt.Errorf("unknown mode %q", mode)
	}
}

// runDemo renders the embedded example at a few widths so the layout
// behavior is visible at a glance.
func runDemo(mode string, opts printer.Options) error {
	name := "demo.expr"
	if mode == "json" {
		name = "demo.json"
	}
	data, err := examples.Load(name)
	if err != nil {
		return err
	}
	d, err := buildDoc(mode, data, opts)
	if err != nil {
		return err
	}
	for _, w := range demoWidths {
		fmt.Printf("%s width %d\n%s\n", strings.Repeat("-", 8), w, d.Render(w))
	}
	return nil
}

func writeDebug(d doc.Doc, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("create debug directory: %w", err)
	}
	if err := doc.WriteDebugJSON(d, debugPath); err != nil {
		return fmt.Errorf("write debug JSON: %w", err)
	}
	return nil
}
