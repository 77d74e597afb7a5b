package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tidwall/gjson"

	"github.com/n0madic/go-playground/internal/config"
	"github.com/n0madic/go-playground/internal/logging"
	"github.com/n0madic/go-playground/internal/models"
	"github.com/n0madic/go-playground/internal/playground"
	"github.com/n0madic/go-playground/internal/spans"
	"github.com/n0madic/go-playground/internal/template"
	"github.com/n0madic/go-playground/internal/transform"
	"github.com/n0madic/go-playground/internal/types"
)

const commands = "Commands: span, tools, vars, models"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: go-playground <command> [flags]")
		fmt.Fprintln(os.Stderr, commands)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr))

	switch os.Args[1] {
	case "span":
		os.Exit(cmdSpan(cfg))
	case "tools":
		os.Exit(cmdTools())
	case "vars":
		os.Exit(cmdVars(cfg))
	case "models":
		os.Exit(cmdModels(cfg))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		fmt.Fprintln(os.Stderr, commands)
		os.Exit(1)
	}
}

func cmdSpan(cfg config.Config) int {
	fs := flag.NewFlagSet("span", flag.ExitOnError)
	file := fs.String("file", "", "Span records file (default stdin)")
	definitions := fs.String("definitions", "", "Bind invocation parameters to the catalog entry of this model")
	pretty := fs.Bool("pretty", false, "Indent JSON output")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Parallel span conversions (0 = unbounded)")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Model catalog YAML (default built-in)")
	fs.Parse(os.Args[2:])

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, results, err := buildFromFile(ctx, *file, cfg.Concurrency)
	if err != nil {
		slog.Error("failed to build playground instances", "error", err)
		return 1
	}

	if *definitions != "" {
		catalog, err := models.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			slog.Error("failed to load model catalog", "error", err)
			return 1
		}
		provider, defs, err := catalog.Definitions(*definitions)
		if err != nil {
			slog.Error("no invocation parameter definitions", "model", *definitions, "error", err)
			return 1
		}
		slog.Debug("binding invocation parameters", "model", *definitions, "provider", provider, "definitions", len(defs))
		for i := range results {
			if !gjson.Valid(records[i].Attributes) {
				continue
			}
			params, _ := playground.InvocationParametersFromAttributes(gjson.Parse(records[i].Attributes), defs)
			results[i].Instance.Model.InvocationParameters = models.ConstrainToDefinition(params, defs)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	for _, res := range results {
		if err := enc.Encode(res); err != nil {
			slog.Error("failed to write result", "error", err)
			return 1
		}
	}
	return 0
}

func cmdTools() int {
	fs := flag.NewFlagSet("tools", flag.ExitOnError)
	file := fs.String("file", "", "Tool definitions file, one definition or an array (default stdin)")
	to := fs.String("to", string(types.ProviderOpenAI), "Target provider (OPENAI|AZURE_OPENAI|ANTHROPIC)")
	sdk := fs.String("sdk", "", "Render as SDK request params (chat|responses|anthropic)")
	fs.Parse(os.Args[2:])

	target, ok := types.ParseProvider(*to)
	if !ok {
		slog.Error("unknown target provider", "provider", *to)
		return 1
	}

	data, err := readInput(*file)
	if err != nil {
		slog.Error("failed to read tool definitions", "error", err)
		return 1
	}
	if !gjson.ValidBytes(data) {
		slog.Error("tool definitions are not valid JSON")
		return 1
	}
	doc := gjson.ParseBytes(data)
	defs := []gjson.Result{doc}
	if doc.IsArray() {
		defs = doc.Array()
	}

	out := make([]any, 0, len(defs))
	for i, def := range defs {
		converted, err := convertTool(def, target, *sdk)
		if err != nil {
			slog.Error("failed to convert tool", "index", i, "error", err)
			return 1
		}
		out = append(out, converted)
	}
	return writeJSON(out)
}

func convertTool(def gjson.Result, target types.Provider, sdk string) (any, error) {
	switch sdk {
	case "":
		return transform.ConvertTool(def, target)
	case "chat", "responses":
		openai, err := transform.ToOpenAIFormat(def)
		if err != nil {
			return nil, err
		}
		if sdk == "chat" {
			return transform.ToOpenAIChatTool(openai), nil
		}
		return transform.ToOpenAIResponsesTool(openai), nil
	case "anthropic":
		converted, err := transform.ConvertTool(def, types.ProviderAnthropic)
		if err != nil {
			return nil, err
		}
		return transform.ToAnthropicSDKTool(converted.(types.AnthropicToolDefinition)), nil
	default:
		return nil, fmt.Errorf("unknown sdk %q", sdk)
	}
}

func cmdVars(cfg config.Config) int {
	fs := flag.NewFlagSet("vars", flag.ExitOnError)
	file := fs.String("file", "", "Span records file (default stdin)")
	fs.StringVar(&cfg.TemplateLanguage, "lang", cfg.TemplateLanguage, "Template language (MUSTACHE|F_STRING|NONE)")
	fs.Parse(os.Args[2:])

	lang, err := template.ParseLanguage(cfg.TemplateLanguage)
	if err != nil {
		slog.Error("invalid template language", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, results, err := buildFromFile(ctx, *file, cfg.Concurrency)
	if err != nil {
		slog.Error("failed to build playground instances", "error", err)
		return 1
	}
	instances := make([]types.PlaygroundInstance, 0, len(results))
	for _, res := range results {
		instances = append(instances, res.Instance)
	}
	return writeJSON(playground.VariablesFromInstances(instances, lang))
}

func cmdModels(cfg config.Config) int {
	fs := flag.NewFlagSet("models", flag.ExitOnError)
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Model catalog YAML (default built-in)")
	fs.Parse(os.Args[2:])

	catalog, err := models.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Error("failed to load model catalog", "error", err)
		return 1
	}
	return writeJSON(catalog)
}

func buildFromFile(ctx context.Context, path string, concurrency int) ([]playground.Span, []playground.Result, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}
	records, err := spans.Load(r)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("loaded spans", "count", len(records))
	results, err := spans.BuildAll(ctx, records, concurrency)
	if err != nil {
		return nil, nil, err
	}
	return records, results, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeJSON(v any) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("failed to encode output", "error", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}
