package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"llmcalc/internal/service"
	"llmcalc/pkg/types"
)

// buildRootCmdWith constructs the command tree bound to opts.
func buildRootCmdWith(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:           "llmcalc",
		Short:         "Estimate VRAM, system RAM and disk needs for running an LLM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Config file (.yaml|.yml|.json|.toml); defaults LLMCALC_CONFIG")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug|info|warn|error (defaults LLMCALC_LOG_LEVEL or info)")
	root.PersistentFlags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output format: text|json|yaml")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if _, err := parseFormat(opts.Output); err != nil {
			return err
		}
		return opts.resolve(cmd.ErrOrStderr(), cmd.Flags().Changed("log-level"))
	}

	root.AddCommand(
		newEstimateCmd(opts),
		newCompareCmd(opts),
		newQuantsCmd(opts),
		newModelsCmd(opts),
		newServeCmd(opts),
	)
	return root
}

func newEstimateCmd(opts *Options) *cobra.Command {
	var (
		f     estimateFlags
		model string
		dir   string
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate memory and disk requirements for one configuration",
		Example: "  llmcalc estimate --params 65 --quant Q4 --context 4096\n" +
			"  llmcalc estimate --params 70 --memory-mode unified --system-memory 192 -o json\n" +
			"  llmcalc estimate --model llama-2-13b.Q5_K_M.gguf --dir ~/models",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := f.request(cmd)
			var (
				resp types.EstimateResponse
				err  error
			)
			if model != "" {
				svc, serr := opts.serviceWithModels(firstNonEmpty(dir, opts.cfg.ModelsDir))
				if serr != nil {
					return serr
				}
				resp, err = svc.EstimateModel(model, req)
			} else {
				resp, err = opts.service(nil).Estimate(req)
			}
			if err != nil {
				return err
			}
			opts.log.Debug().Float64("required_vram_gb", resp.RequiredVRAMGB).Msg("estimate")
			return writeOutput(cmd.OutOrStdout(), opts.Output, resp, renderEstimate)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&model, "model", "", "Estimate a model file discovered in the models directory (by file name)")
	cmd.Flags().StringVar(&dir, "dir", "", "Models directory for --model (defaults models_dir from config)")
	return cmd
}

func newCompareCmd(opts *Options) *cobra.Command {
	var f estimateFlags
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Estimate every model quantization for the same configuration",
		Example: "  llmcalc compare --params 13 --context 8192",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.service(nil).Compare(f.request(cmd))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.Output, resp, renderCompare)
		},
	}
	f.register(cmd)
	return cmd
}

func newQuantsCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "quants",
		Aliases: []string{"quantizations"},
		Short:   "List quantization schemes and their factors",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd.OutOrStdout(), opts.Output, opts.service(nil).Quantizations(), renderQuants)
		},
	}
}

func newModelsCmd(opts *Options) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:     "models",
		Short:   "List GGUF model files in a directory",
		Example: "  llmcalc models --dir ~/models/llm",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.serviceWithModels(firstNonEmpty(dir, opts.cfg.ModelsDir))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.Output, types.ModelsResponse{Models: svc.ListModels()}, renderModels)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory to scan for *.gguf files (defaults models_dir from config)")
	return cmd
}

func newServeCmd(opts *Options) *cobra.Command {
	var addr, dir string
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the estimation HTTP API",
		Example: "  llmcalc serve --addr :8080 --models-dir ~/models/llm",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("models-dir") {
				cfg.ModelsDir = dir
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return fnServe(ctx, cfg, opts.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address, e.g. :8080 (defaults addr from config)")
	cmd.Flags().StringVar(&dir, "models-dir", "", "Directory to scan for *.gguf model files (defaults models_dir from config)")
	return cmd
}

// service builds a Service over models using the configured defaults.
func (o *Options) service(models []types.Model) *service.Service {
	return service.New(service.Config{
		Registry: models,
		Defaults: service.Defaults(o.cfg.Defaults),
	})
}

func (o *Options) serviceWithModels(dir string) (*service.Service, error) {
	if dir == "" {
		return nil, errors.New("no models directory: pass --dir or set models_dir")
	}
	models, err := fnScan(dir)
	if err != nil {
		return nil, fmt.Errorf("scan models: %w", err)
	}
	o.log.Debug().Str("dir", dir).Int("models", len(models)).Msg("scanned models")
	return o.service(models), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
