package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/svctools/svc2openapi/internal/config"
	"github.com/svctools/svc2openapi/internal/generator"
)

// GenerateConfig captures all inputs that influence the generate command
// after merging defaults and CLI overrides.
type GenerateConfig struct {
	ConfigPath string
	Out        string
	Format     string
	Strict     bool
	Force      bool
	Verbose    bool
}

func defaultGenerateConfig() GenerateConfig {
	return GenerateConfig{Out: "openapi.yaml"}
}

var generateRunner = runGenerate

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an OpenAPI 3.0.0 document from a documentation config",
		Long: "Generate an OpenAPI 3.0.0 document from a documentation config describing " +
			"models, security definitions, and documented function events.",
		Example: strings.TrimSpace(`  svc2openapi generate --config svc2openapi.yaml
  svc2openapi -c svc2openapi.yaml generate --out openapi.json --format json --force`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveGenerateConfig(cmd)
			if err != nil {
				return err
			}
			return generateRunner(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("out", "", "Output file (defaults to openapi.yaml)")
	flags.String("format", "", "Output format (yaml|json); derived from --out when omitted")
	flags.Bool("strict", false, "Fail on model references that do not resolve")
	flags.Bool("force", false, "Overwrite the output file when it exists")

	return cmd
}

func resolveGenerateConfig(cmd *cobra.Command) (*GenerateConfig, error) {
	cfg := defaultGenerateConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigPath = strings.TrimSpace(configPath)

	if err := applyGenerateFlagOverrides(cmd.Flags(), &cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyGenerateFlagOverrides(flags *pflag.FlagSet, cfg *GenerateConfig) error {
	if flags.Changed("out") {
		value, err := flags.GetString("out")
		if err != nil {
			return err
		}
		cfg.Out = strings.TrimSpace(value)
	}
	if flags.Changed("format") {
		value, err := flags.GetString("format")
		if err != nil {
			return err
		}
		cfg.Format = strings.TrimSpace(value)
	}
	if flags.Changed("strict") {
		value, err := flags.GetBool("strict")
		if err != nil {
			return err
		}
		cfg.Strict = value
	}
	if flags.Changed("force") {
		value, err := flags.GetBool("force")
		if err != nil {
			return err
		}
		cfg.Force = value
	}
	if flags.Changed("verbose") {
		value, err := flags.GetBool("verbose")
		if err != nil {
			return err
		}
		cfg.Verbose = value
	}

	return nil
}

func (c *GenerateConfig) normalize() {
	c.ConfigPath = strings.TrimSpace(c.ConfigPath)
	c.Out = strings.TrimSpace(c.Out)
	if c.Out == "" {
		c.Out = "openapi.yaml"
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		if strings.EqualFold(filepath.Ext(c.Out), ".json") {
			c.Format = "json"
		} else {
			c.Format = "yaml"
		}
	}
}

func (c *GenerateConfig) validate() error {
	if c.ConfigPath == "" {
		return newUsageError("generate: --config is required")
	}
	switch c.Format {
	case "yaml", "json":
	default:
		return newUsageError(fmt.Sprintf("generate: unsupported --format %q (allowed: yaml, json)", c.Format))
	}
	return nil
}

func runGenerate(ctx context.Context, cfg *GenerateConfig) error {
	_ = ctx

	log := zerolog.Nop()
	if cfg.Verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}

	file, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return newUsageError(fmt.Sprintf("generate: %v", err))
	}

	gen := generator.New(&file.Documentation,
		generator.WithStrict(cfg.Strict),
		generator.WithLogger(log),
	)

	reg, err := gen.Parse()
	if err != nil {
		return mapGeneratorErr(err)
	}
	if _, err := gen.ReadFunctions(reg, file.Functions); err != nil {
		return mapGeneratorErr(err)
	}

	data, err := encodeDocument(gen.Definition(), cfg.Format)
	if err != nil {
		return fmt.Errorf("generate: encode document: %w", err)
	}

	absOut, err := filepath.Abs(cfg.Out)
	if err != nil {
		return fmt.Errorf("generate: resolve output path: %w", err)
	}
	if st, serr := os.Stat(absOut); serr == nil && st.Mode().IsRegular() && !cfg.Force {
		return newUsageError(fmt.Sprintf("generate: %q already exists (use --force to overwrite)", absOut))
	}

	// Atomic write via temp + rename
	tmp := absOut + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return newUsageError(fmt.Sprintf("generate: cannot write temp file: %v\nHint: choose a different --out or check directory permissions.", err))
	}
	if err := os.Rename(tmp, absOut); err != nil {
		_ = os.Remove(tmp)
		return newUsageError(fmt.Sprintf("generate: cannot place file at %s: %v", absOut, err))
	}

	fmt.Fprintf(os.Stdout, "Wrote OpenAPI document to %s\n", absOut)
	return nil
}

// mapGeneratorErr converts structured generation errors into friendly usage
// messages.
func mapGeneratorErr(err error) error {
	var ge *generator.Error
	if errors.As(err, &ge) {
		msg := fmt.Sprintf("generate: %s", ge.Message)
		if ge.Function != "" {
			msg = fmt.Sprintf("%s\nFunction: %s", msg, ge.Function)
		}
		if ge.Model != "" {
			msg = fmt.Sprintf("%s\nModel: %s", msg, ge.Model)
		}
		return newUsageError(msg)
	}
	return err
}

func encodeDocument(doc any, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return yaml.Marshal(doc)
	}
}
