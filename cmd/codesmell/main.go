// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Command codesmell detects simple code smells in C-like sources.
//
// It exposes five subcommands:
//
//   - analyze:   extract functions, run the smell checks and persist a report
//   - report:    render the last saved report in different formats
//   - functions: list the functions detected in a file
//   - smells:    list the available checks
//   - watch:     analyze, then re-analyze whenever a source file changes
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	outputadapter "github.com/rafaelvolkmer/codesmell/internal/adapter/output"
	parser "github.com/rafaelvolkmer/codesmell/internal/adapter/parser"
	"github.com/rafaelvolkmer/codesmell/internal/adapter/watch"
	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
	"github.com/rafaelvolkmer/codesmell/internal/domain/smell"
	"github.com/rafaelvolkmer/codesmell/internal/infrastructure"
	"github.com/rafaelvolkmer/codesmell/internal/usecase"
)

const (
	// envPrefix defines the prefix used for environment variables that
	// configure the CLI. For example:
	//
	//   CODESMELL_MAX_LINES=30
	//   CODESMELL_CHECKS=long_method,duplicated_code
	envPrefix = "CODESMELL"

	// configName is looked up as .codesmell.yaml in the working directory
	// and in the analyzed root.
	configName = ".codesmell"

	defaultExtensions = ".c,.h,.cpp,.hpp,.cc,.hh,.cxx,.java,.cs,.js,.ts"

	exitSmellsFound = 2
)

// errSmellsFound signals --fail-on-smell; main maps it to exit code 2.
var errSmellsFound = errors.New("code smells found")

// App wires configuration, shared dependencies and command handlers for the CLI.
type App struct {
	config *viper.Viper
	deps   *Dependencies
}

// Dependencies groups the shared services used by the CLI commands.
type Dependencies struct {
	Scanner    *infrastructure.FSScanner
	Storage    *infrastructure.FileStorage
	Extractors []ports.FunctionExtractor
}

// NewApp constructs an App with a Viper instance reading CODESMELL_*
// environment variables, hyphens in flag names mapped to underscores.
func NewApp() *App {
	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	defaults := model.DefaultThresholds()
	config.SetDefault("max-lines", defaults.MaxMethodLines)
	config.SetDefault("max-params", defaults.MaxParameters)
	config.SetDefault("similarity", defaults.SimilarityThreshold)
	config.SetDefault("max-name-length", defaults.MaxNameLength)

	deps := &Dependencies{
		Scanner: infrastructure.NewFSScanner(),
		Storage: infrastructure.NewFileStorage(),
		Extractors: []ports.FunctionExtractor{
			parser.NewCLikeExtractor(),
		},
	}

	return &App{
		config: config,
		deps:   deps,
	}
}

// main creates a root context cancelled on SIGINT/SIGTERM, initializes
// the App and dispatches to the subcommand. All exit codes are decided here.
func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	rootContext, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := NewApp()

	command := os.Args[1]
	commandArgs := os.Args[2:]

	var err error

	switch command {
	case "analyze":
		err = application.runAnalyze(rootContext, commandArgs)
	case "report":
		err = application.runReport(rootContext, commandArgs)
	case "functions":
		err = application.runFunctions(rootContext, commandArgs)
	case "smells":
		err = application.runSmells(rootContext, commandArgs)
	case "watch":
		err = application.runWatch(rootContext, commandArgs)
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		log.Printf("unknown command %q\n", command)
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if errors.Is(err, errSmellsFound) {
		stop()
		os.Exit(exitSmellsFound)
	}
	if err != nil {
		log.Printf("error: %v", err)
		stop()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `codesmell - heuristic code smell detector

Usage:
  codesmell analyze   [options] [path]
  codesmell report    [options] [path]
  codesmell functions [path]
  codesmell smells
  codesmell watch     [options] [path]

Commands:
  analyze    Detect smells and persist a report under .codesmell/report.json
  report     Render the last report (text, json or yaml)
  functions  List the functions detected in a source file
  smells     List supported smell checks
  watch      Re-run analyze whenever a source file changes

Run "codesmell <command> -h" for command-specific flags.
`)
}

// analysisFlags registers the flags shared by analyze and watch.
func analysisFlags(flagSet *pflag.FlagSet) {
	defaults := model.DefaultThresholds()

	flagSet.String("path", ".", "File or project root to analyze (can also be given as positional argument)")
	flagSet.Int("workers", 0, "Number of worker goroutines (0 = use NumCPU)")
	flagSet.String("ext", defaultExtensions, "Comma-separated list of file extensions to include")
	flagSet.String("checks", "all", "Comma-separated smells to run (see \"codesmell smells\")")
	flagSet.String("format", "text", "Output format (text|json|yaml)")
	flagSet.Bool("bodies", false, "Include function bodies in json/yaml output")
	flagSet.Int("max-lines", defaults.MaxMethodLines, "Long method: maximum body lines")
	flagSet.Int("max-params", defaults.MaxParameters, "Long parameter list: maximum parameters")
	flagSet.Float64("similarity", defaults.SimilarityThreshold, "Duplicated code: maximum body similarity (0-1)")
	flagSet.Int("max-name-length", defaults.MaxNameLength, "Long name: maximum name length")
	flagSet.String("config", "", "Path to a YAML config file (default: .codesmell.yaml)")
	flagSet.Bool("no-color", false, "Disable colored output")
	flagSet.BoolP("quiet", "q", false, "Hide the progress bar")
}

// parseFlags parses args, binds the flag set into Viper, loads the config
// file and returns the effective root path.
//
// Configuration precedence (highest first):
//  1. Command-line flags
//  2. Environment variables CODESMELL_*
//  3. .codesmell.yaml
//  4. Built-in defaults
func (a *App) parseFlags(flagSet *pflag.FlagSet, args []string) (string, error) {
	if err := flagSet.Parse(args); err != nil {
		return "", err
	}

	if err := a.config.BindPFlags(flagSet); err != nil {
		return "", fmt.Errorf("bind flags to viper: %w", err)
	}

	rootPath := a.config.GetString("path")
	if remainingArgs := flagSet.Args(); len(remainingArgs) > 0 {
		rootPath = remainingArgs[0]
	}

	if err := a.loadConfigFile(rootPath); err != nil {
		return "", err
	}

	a.configureColor()
	return rootPath, nil
}

func (a *App) loadConfigFile(rootPath string) error {
	if path := a.config.GetString("config"); path != "" {
		a.config.SetConfigFile(path)
	} else {
		a.config.SetConfigName(configName)
		a.config.SetConfigType("yaml")
		a.config.AddConfigPath(".")
		if info, err := os.Stat(rootPath); err == nil && info.IsDir() {
			a.config.AddConfigPath(rootPath)
		}
	}

	if err := a.config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func (a *App) configureColor() {
	if a.config.GetBool("no-color") || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (a *App) thresholds() model.Thresholds {
	return model.Thresholds{
		MaxMethodLines:      a.config.GetInt("max-lines"),
		MaxParameters:       a.config.GetInt("max-params"),
		SimilarityThreshold: a.config.GetFloat64("similarity"),
		MaxNameLength:       a.config.GetInt("max-name-length"),
	}
}

func (a *App) workers() int {
	workerCount := a.config.GetInt("workers")
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
		if workerCount < 1 {
			workerCount = 1
		}
	}
	return workerCount
}

func (a *App) progress() ports.ProgressReporter {
	if a.config.GetBool("quiet") || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}
	return infrastructure.NewBarProgress(os.Stderr)
}

// analyze runs one analysis with the current configuration and prints
// the rendered report.
func (a *App) analyze(ctx context.Context, rootPath string) (*model.ProjectReport, error) {
	checks, err := smell.ParseKinds(a.config.GetString("checks"))
	if err != nil {
		return nil, err
	}

	renderer, found := a.renderers().Get(a.config.GetString("format"))
	if !found {
		return nil, fmt.Errorf("unknown format %q", a.config.GetString("format"))
	}

	analyzeUseCase := usecase.NewAnalyzeProjectUseCase(
		a.deps.Scanner,
		a.deps.Scanner,
		a.deps.Extractors,
		a.deps.Storage,
		a.progress(),
		a.workers(),
	)

	projectReport, err := analyzeUseCase.Execute(ctx, usecase.AnalyzeProjectRequest{
		RootPath:   rootPath,
		IncludeExt: parseExtensions(a.config.GetString("ext")),
		Thresholds: a.thresholds(),
		Checks:     checks,
	})
	if err != nil {
		return nil, err
	}

	renderedOutput, err := renderer.Render(projectReport)
	if err != nil {
		return nil, err
	}

	fmt.Println(renderedOutput)
	return projectReport, nil
}

// runAnalyze handles the "analyze" subcommand.
func (a *App) runAnalyze(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	flagSet.SortFlags = false

	analysisFlags(flagSet)
	flagSet.Bool("fail-on-smell", false, "Exit with status 2 when any smell is found")

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  codesmell analyze [options] [path]

Options:
`)
		flagSet.PrintDefaults()
	}

	rootPath, err := a.parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	projectReport, err := a.analyze(ctx, rootPath)
	if err != nil {
		return err
	}

	if a.config.GetBool("fail-on-smell") && projectReport.Summary.TotalFindings > 0 {
		return errSmellsFound
	}
	return nil
}

// runReport handles the "report" subcommand. It loads the last saved
// report for the given root and renders it.
func (a *App) runReport(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("report", pflag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String("path", ".", "File or project root that was analyzed (can also be given as positional argument)")
	flagSet.String("format", "text", "Output format (text|json|yaml)")
	flagSet.String("checks", "", "Only show these smells (comma-separated)")
	flagSet.Bool("bodies", false, "Include function bodies in json/yaml output")
	flagSet.Bool("no-color", false, "Disable colored output")

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  codesmell report [options] [path]

Options:
`)
		flagSet.PrintDefaults()
	}

	rootPath, err := a.parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	var checks []model.SmellKind
	if raw := a.config.GetString("checks"); raw != "" {
		if checks, err = smell.ParseKinds(raw); err != nil {
			return err
		}
	}

	reportUseCase := usecase.NewGenerateReportUseCase(a.deps.Storage, a.renderers())

	renderedOutput, err := reportUseCase.Execute(ctx, usecase.GenerateReportRequest{
		RootPath: rootPath,
		Format:   a.config.GetString("format"),
		Checks:   checks,
	})
	if err != nil {
		return err
	}

	fmt.Println(renderedOutput)
	return nil
}

// runFunctions handles the "functions" subcommand.
func (a *App) runFunctions(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("functions", pflag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String("path", "input.cpp", "Source file to inspect (can also be given as positional argument)")
	flagSet.Bool("no-color", false, "Disable colored output")

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  codesmell functions [path]

Lists the functions detected in a source file.

Options:
`)
		flagSet.PrintDefaults()
	}

	path, err := a.parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	functions, err := usecase.NewListFunctionsUseCase(a.deps.Scanner, a.deps.Extractors).
		Execute(ctx, usecase.ListFunctionsRequest{Path: path})
	if err != nil {
		return err
	}

	if len(functions) == 0 {
		fmt.Println("No functions detected.")
		return nil
	}

	name := color.New(color.FgCyan).SprintFunc()
	for _, fn := range functions {
		fmt.Printf("%5d  %s(%s)\n", fn.Line, name(fn.Name), strings.Join(fn.Parameters, ", "))
	}
	return nil
}

// runSmells handles the "smells" subcommand.
func (a *App) runSmells(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("smells", pflag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  codesmell smells

Lists the supported smell checks.
`)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	fmt.Println("Supported smells:")
	for _, s := range usecase.NewListSmellsUseCase().Execute(ctx) {
		fmt.Printf("- %s (%s)\n    %s\n", s.Name, s.Kind, s.Description)
	}
	return nil
}

// runWatch handles the "watch" subcommand. It blocks until interrupted.
func (a *App) runWatch(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("watch", pflag.ContinueOnError)
	flagSet.SortFlags = false

	analysisFlags(flagSet)
	flagSet.Duration("debounce", watch.DefaultDebounce, "Quiet period before re-analyzing")

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  codesmell watch [options] [path]

Options:
`)
		flagSet.PrintDefaults()
	}

	rootPath, err := a.parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	if _, err := a.analyze(ctx, rootPath); err != nil {
		return err
	}

	log.Printf("watching %s for changes (Ctrl+C to stop)", rootPath)

	watcher := watch.NewWatcher(
		rootPath,
		parseExtensions(a.config.GetString("ext")),
		a.config.GetDuration("debounce"),
		func(ctx context.Context) error {
			_, err := a.analyze(ctx, rootPath)
			return err
		},
	)
	return watcher.Run(ctx)
}

// parseExtensions normalizes a comma-separated list of file extensions into a
// slice of dot-prefixed extensions.
//
// Examples:
//
//	parseExtensions("cpp,c")        -> []string{".cpp", ".c"}
//	parseExtensions(".c,.h")        -> []string{".c", ".h"}
func parseExtensions(raw string) []string {
	parts := strings.Split(raw, ",")
	var extensions []string

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		extensions = append(extensions, trimmed)
	}

	return extensions
}

func (a *App) renderers() *outputadapter.RendererRegistry {
	bodies := a.config.GetBool("bodies")
	return outputadapter.NewRendererRegistry(
		outputadapter.NewTextRenderer(),
		outputadapter.NewJSONRenderer(bodies),
		outputadapter.NewYAMLRenderer(bodies),
	)
}
