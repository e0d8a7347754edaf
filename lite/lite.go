// Package lite is a thin command-line application toolkit: cobra commands
// with pflag flags, configuration merged from YAML files and environment
// variables through viper, and colored console logging wired into the
// Databricks SDK logger.
package lite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/databricks/databricks-sdk-go/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Command is one subcommand of a Root: flags bind into the request type T,
// Run receives the parsed request along with positional arguments.
type Command[C, T any] struct {
	Name  string
	Short string
	Long  string
	Args  cobra.PositionalArgs
	Flags func(flags *pflag.FlagSet, req *T)
	Run   func(root *Root[C], req *T, args []string) error
}

func (s *Command[C, T]) Register(root *Root[C]) {
	var req T
	cmd := &cobra.Command{
		Use:   s.Name,
		Short: s.Short,
		Long:  s.Long,
		Args:  s.Args,
		RunE: func(_ *cobra.Command, args []string) error {
			return s.Run(root, &req, args)
		},
	}
	if s.Flags != nil {
		s.Flags(cmd.Flags(), &req)
	}
	root.AddCommand(cmd)
}

// Init describes the root command of a tool. ConfigPath may reference
// $HOME; EnvPrefix defaults to the uppercased tool name.
type Init[T any] struct {
	Name       string
	Version    string
	Short      string
	Long       string
	ConfigPath string
	EnvPrefix  string
	Bind       func(flags *pflag.FlagSet, cfg *T)
}

func New[T any](ctx context.Context, init Init[T]) *Root[T] {
	root := &Root[T]{
		Command: cobra.Command{
			Use:     init.Name,
			Short:   init.Short,
			Long:    init.Long,
			Version: init.Version,

			// Runtime errors don't warrant a usage dump: usage is shown
			// for flag errors only, via the flag error func below.
			SilenceUsage: true,

			// Errors are rendered once, in Run.
			SilenceErrors: true,
		},
	}
	// Holds until Execute overwrites it with the command context.
	root.SetContext(ctx)
	root.SetVersionTemplate(fmt.Sprintf("%s v%s", init.Name, init.Version))
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, c.UsageString())
	})
	if init.EnvPrefix == "" {
		init.EnvPrefix = strings.ToUpper(init.Name)
	}
	flags := root.PersistentFlags()
	flags.StringVar(&root.configPath, "config", expandHome(init.ConfigPath), "Location of client config files")
	if env, ok := os.LookupEnv(init.EnvPrefix + "_CONFIG"); ok {
		root.configPath = env
	}
	flags.BoolVar(&root.Debug, "debug", false, "Enable debug log output")
	if init.Bind != nil {
		init.Bind(flags, &root.Config)
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return root.preRun(cmd, init)
	}
	return root
}

func expandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warnf(context.Background(), "Cannot find home dir: %s", err)
	}
	return filepath.Clean(strings.ReplaceAll(path, "$HOME", home))
}

type Root[T any] struct {
	cobra.Command
	Logger     *slog.Logger
	Debug      bool
	Config     T
	configPath string

	// bound maps a flag name to the prefix that first claimed it, so a
	// persistent flag visited again through a subcommand's flag set does
	// not seed a second default under the subcommand's prefix.
	bound map[string]string
}

func (r *Root[T]) initLogger() {
	level := slog.LevelWarn
	if r.Debug {
		level = slog.LevelDebug
	}
	w := r.ErrOrStderr()
	r.Logger = slog.New(&friendlyHandler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}),
		w: w,
	})
	logger.DefaultLogger = &slogAdapter{r.Logger}
}

func (r *Root[T]) preRun(cmd *cobra.Command, init Init[T]) error {
	r.initLogger()
	v := viper.NewWithOptions(viper.WithLogger(r.Logger))
	v.SetConfigName(init.Name)
	v.SetConfigType("yaml")
	if r.configPath != "" {
		v.AddConfigPath(r.configPath)
	} else {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(init.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	err := v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); err != nil && !ok {
		return fmt.Errorf("config: %w", err)
	}
	err = r.bindViperToFlags(v, r.PersistentFlags(), "")
	if err != nil {
		return fmt.Errorf("root flags: %w", err)
	}
	err = r.bindViperToFlags(v, cmd.Flags(), cmd.Name()+".")
	if err != nil {
		return fmt.Errorf("command flags: %w", err)
	}
	r.logEffectiveConfig(cmd.Context(), v)
	return nil
}

// logEffectiveConfig dumps the merged configuration when --debug is on.
func (r *Root[T]) logEffectiveConfig(ctx context.Context, v *viper.Viper) {
	if !r.Debug {
		return
	}
	keys := v.AllKeys()
	sort.Strings(keys)
	for _, key := range keys {
		logger.Debugf(ctx, "config: %s=%v", key, v.Get(key))
	}
}

// bindViperToFlags completes the flag/viper round trip: flag defaults seed
// viper, and viper settings (config file or environment) flow back into
// any flag not explicitly changed on the command line.
func (r *Root[T]) bindViperToFlags(v *viper.Viper, flags *pflag.FlagSet, prefix string) error {
	if r.bound == nil {
		r.bound = map[string]string{}
	}
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "help" {
			return
		}
		owner, seen := r.bound[f.Name]
		if !seen {
			owner = prefix
			r.bound[f.Name] = prefix
		}
		propName := strings.ReplaceAll(prefix+f.Name, "-", "_")
		if owner == prefix && !v.IsSet(propName) {
			err = seedDefault(v, flags, f, propName)
			if err != nil {
				return
			}
		}
		if !f.Changed && v.IsSet(propName) {
			switch x := v.Get(propName).(type) {
			case []any:
				sliceValue, ok := f.Value.(pflag.SliceValue)
				if !ok {
					err = fmt.Errorf("%s: expected slice, but got %s", propName, f.Value.String())
					return
				}
				for _, y := range x {
					sliceValue.Append(fmt.Sprint(y))
				}
			default:
				f.Value.Set(fmt.Sprintf("%v", x))
			}
		}
	})
	return err
}

func seedDefault(v *viper.Viper, flags *pflag.FlagSet, f *pflag.Flag, propName string) error {
	switch f.Value.Type() {
	case "bool":
		value, err := flags.GetBool(f.Name)
		if err != nil {
			return err
		}
		v.SetDefault(propName, value)
	case "int":
		value, err := flags.GetInt(f.Name)
		if err != nil {
			return err
		}
		v.SetDefault(propName, value)
	case "int64":
		value, err := flags.GetInt64(f.Name)
		if err != nil {
			return err
		}
		v.SetDefault(propName, value)
	case "string":
		value, err := flags.GetString(f.Name)
		if err != nil {
			return err
		}
		v.SetDefault(propName, value)
	case "stringSlice":
		value, err := flags.GetStringSlice(f.Name)
		if err != nil {
			return err
		}
		v.SetDefault(propName, value)
	case "duration":
		value, err := flags.GetDuration(f.Name)
		if err != nil {
			return err
		}
		v.SetDefault(propName, value)
	}
	return nil
}

type Registerable[T any] interface {
	Register(root *Root[T])
}

func (r *Root[T]) With(subs ...Registerable[T]) *Root[T] {
	for _, sub := range subs {
		sub.Register(r)
	}
	return r
}

// Run executes the tool and exits the process on failure. Panics are
// rendered as errors unless --debug is set, in which case they propagate
// with their stack.
func (r *Root[T]) Run(ctx context.Context) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if r.Debug {
			panic(p)
		}
		fmt.Fprint(os.Stderr, color.RedString("PANIC: %s\n", p))
		os.Exit(2)
	}()
	_, err := r.ExecuteContextC(ctx)
	if err != nil {
		fmt.Fprint(os.Stderr, color.RedString("ERROR: %s\n", err.Error()))
		os.Exit(1)
	}
}
