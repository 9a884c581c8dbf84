package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/imstr/foundation/core/error"
	mdwlog "github.com/msto63/imstr/foundation/core/log"
	"github.com/msto63/imstr/foundation/utils/imstr"
	"github.com/msto63/imstr/internal/render"
	"github.com/msto63/imstr/pkg/core/config"
	"github.com/msto63/imstr/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

// session bundles everything a command needs for one invocation
type session struct {
	cfg      *config.Config
	logger   *logging.Logger
	factory  *imstr.Factory
	budget   *imstr.LimitedAllocator
	renderer *render.Renderer
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "imstr",
	Short: "Immutable, length-tracked strings",
	Long: `imstr demonstrates an immutable string library whose values carry an
explicit length and never share storage.

Commands:
  demo     - replay the reference demo sequence
  op       - run a single string operation
  prompt   - read a line and trim it
  version  - show version information

Configuration is read from --config, $IMSTR_CONFIG, ./imstr.toml or
./configs/imstr.toml. Every key can be overridden with an IMSTR_ variable,
e.g. IMSTR_ALLOC_MAX_TOTAL_BYTES=256.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		current = s
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if current != nil {
			current.report(err)
		}
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./imstr.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	base := logging.NewLogger(logging.LoggerConfig{
		Name:   "imstr",
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Color:  cfg.UI.Color,
		Output: cmd.ErrOrStderr(),
	})
	if verbose {
		base.SetLevel(mdwlog.LevelDebug)
	}
	base = base.WithFields(mdwlog.Field("command", cmd.CommandPath()).
		Merge(mdwlog.Bool("budgeted", cfg.Alloc.MaxTotalBytes > 0)))

	s := &session{
		cfg:      cfg,
		logger:   logging.New("imstr", base),
		renderer: render.New(cfg.UI.Color),
	}

	var alloc imstr.Allocator = imstr.HeapAllocator{}
	if cfg.Alloc.MaxTotalBytes > 0 {
		s.budget = imstr.NewLimitedAllocator(alloc, cfg.Alloc.MaxTotalBytes)
		alloc = s.budget
	}
	s.factory = imstr.NewFactory(alloc, imstr.WithLogger(base))

	s.logger.Debug("session ready",
		"config", cfg.Source,
		"max_total_bytes", cfg.Alloc.MaxTotalBytes,
		"log_format", cfg.Log.Format,
	)
	return s, nil
}

// print writes a value with its length
func (s *session) print(out io.Writer, v imstr.String) {
	fmt.Fprintln(out, s.renderer.Pair(v))
}

// result writes a labelled scalar
func (s *session) result(out io.Writer, label string, value interface{}) {
	fmt.Fprintln(out, s.renderer.Result(label, value))
}

// finish logs the allocation summary of a command
func (s *session) finish() {
	if s.budget == nil {
		return
	}
	s.logger.Debug("allocation budget",
		"used", s.budget.Used(),
		"limit", s.budget.Limit(),
	)
}

// timed runs one library operation and records its duration
func (s *session) timed(name string, fn func() (imstr.String, error)) (imstr.String, error) {
	s.logger.Trace("operation started", "operation", name)
	timer := s.logger.StartTimer(name)
	v, err := fn()
	if err != nil {
		timer.StopWithError(err)
		return v, err
	}
	timer.WithField("length", v.Len()).Stop()
	return v, nil
}

// report logs a failed command; severity decides between warn and error
func (s *session) report(err error) {
	if mdwerror.GetSeverity(err).ShouldAlert() {
		s.logger.ErrorWithErr("command failed", err)
		return
	}
	s.logger.WarnWithErr("command failed", err)
}

func printError(err error) {
	r := render.New(false)
	if current != nil {
		r = current.renderer
	}
	fmt.Fprintln(os.Stderr, r.Error(err))
}
