package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ytget/langlearn/internal/config"
	"github.com/ytget/langlearn/internal/platform"
	"github.com/ytget/langlearn/internal/vocab"
)

// skipLoadAnnotation marks commands that do not read the vocabulary file
const skipLoadAnnotation = "skip-load"

var (
	configFile string
	filePath   string
	policyName string
	appCtx     *appContext
)

// appContext is what subcommands share: the configuration and the loaded store
type appContext struct {
	cfg   *config.Config
	store *vocab.Store
	path  string
}

// save writes the store back to the vocabulary file
func (a *appContext) save() error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(a.path)); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(a.path), err)
	}
	return platform.WriteLines(a.path, a.store.Lines())
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "langlearn",
		Short:        "Keep a vocabulary of words and their meanings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if filePath != "" {
				cfg.File = filePath
			}
			if policyName != "" {
				cfg.LoadPolicy = policyName
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			appCtx = &appContext{
				cfg:   cfg,
				store: vocab.NewStore(),
				path:  platform.EnsureLangExtension(cfg.File),
			}
			if cmd.Annotations[skipLoadAnnotation] != "" {
				return nil
			}
			return loadVocabulary(cmd, appCtx)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./langlearn.yaml or ~/.config/langlearn/langlearn.yaml)")
	root.PersistentFlags().StringVarP(&filePath, "file", "f", "", "vocabulary file (default ~/Documents/vocabulary.lang)")
	root.PersistentFlags().StringVar(&policyName, "policy", "", "what to do with invalid lines: skip or abort")

	root.AddCommand(listCmd(), addCmd(), updateCmd(), removeCmd(), newCmd(), exportCmd(), tuiCmd())
	return root
}

// loadVocabulary fills a.store from the vocabulary file. A missing file leaves
// the store empty. Rejected lines are printed as warnings under the skip
// policy and fail the command under the abort policy.
func loadVocabulary(cmd *cobra.Command, a *appContext) error {
	lines, err := platform.ReadLines(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	err = a.store.Reload(lines, a.cfg.Policy())
	var report *vocab.LoadReport
	switch {
	case err == nil:
		return nil
	case errors.As(err, &report):
		for _, rejected := range report.Rejected {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %v\n", a.path, rejected)
		}
		return nil
	default:
		return fmt.Errorf("%s: %w", a.path, err)
	}
}

// parseIndex turns a 1-based entry number into a store index
func parseIndex(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid entry number %q", arg)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("entry number %d out of range (1-%d)", n, count)
	}
	return n - 1, nil
}
