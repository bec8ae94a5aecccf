package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// InitConfig captures the options for the init command.
type InitConfig struct {
	OutputPath string
	Force      bool
	Verbose    bool
}

var initRunner = runInit

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a sample svc2openapi documentation config",
		Long:  "Scaffold a commented svc2openapi documentation config that documents available options.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			cfg := &InitConfig{
				OutputPath: out,
				Force:      force,
				Verbose:    verbose,
			}
			return initRunner(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("out", "svc2openapi.yaml", "Where to write the sample config file")
	cmd.Flags().Bool("force", false, "Overwrite the target file if it already exists")

	return cmd
}

func runInit(ctx context.Context, cfg *InitConfig) error {
	_ = ctx

	out := strings.TrimSpace(cfg.OutputPath)
	if out == "" {
		out = "svc2openapi.yaml"
	}
	absPath, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("init: resolve output path: %w", err)
	}

	if st, err := os.Stat(absPath); err == nil && !cfg.Force {
		if st.Mode().IsRegular() {
			return newUsageError(fmt.Sprintf("init: %q already exists (use --force to overwrite)", absPath))
		}
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return newUsageError(fmt.Sprintf("init: cannot create parent directory: %v", err))
	}

	content := strings.TrimSpace(sampleConfigYAML) + "\n"

	// Atomic write via temp + rename
	tmp := absPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return newUsageError(fmt.Sprintf("init: cannot write temp file: %v\nHint: choose a different --out or check directory permissions.", err))
	}
	if err := os.Rename(tmp, absPath); err != nil {
		_ = os.Remove(tmp)
		return newUsageError(fmt.Sprintf("init: cannot place file at %s: %v", absPath, err))
	}
	fmt.Fprintf(os.Stdout, "Wrote sample config to %s\n", absPath)
	return nil
}

// sampleConfigYAML is a commented example config documenting available options.
const sampleConfigYAML = `# svc2openapi documentation config (YAML)
# Run: svc2openapi generate --config svc2openapi.yaml

documentation:
  title: Pet API
  description: Everything about pets

  # Omitted versions fall back to a generated unique identifier.
  # version: "1.0.0"

  servers:
    - url: https://api.example.com
      description: production

  # Named security definitions. authorizerName links a scheme to function
  # authorizers and never appears in the output document. keyName is the
  # apiKey header/query name.
  security:
    - name: petAuth
      authorizerName: petAuthorizer
      type: apiKey
      keyName: X-Api-Key
      in: header

  # Reusable models, referenced from requestModels/responseModels by name.
  # A model carries either an inline JSON-Schema document or a schemaFrom
  # reference selecting a type from a schema file's definitions.
  models:
    - name: Pet
      schema:
        type: object
        properties:
          name:
            type: string
    # - name: Owner
    #   schemaFrom:
    #     file: ./schemas/models.yaml
    #     type: Owner

functions:
  - name: getPet
    events:
      - http:
          path: pets/{id}
          method: GET
          authorizer: petAuthorizer
          documentation:
            summary: Fetch a pet
            pathParams:
              - name: id
                description: Pet identifier
            methodResponses:
              - statusCode: 200
                responseModels:
                  application/json: Pet
`
