package cmd

import (
	"context"
	"runtime"

	"github.com/databrickslabs/sandbox/buckets/lite"
	"github.com/databrickslabs/sandbox/buckets/wordfreq"
	"github.com/spf13/pflag"
)

const productName = "wordbag"
const productVersion = "0.0.1"

type Config struct {
	Workers   int
	Stopwords string
	Fold      bool
}

func Run(ctx context.Context) {
	lite.New[Config](ctx, lite.Init[Config]{
		Name:       productName,
		Version:    productVersion,
		Short:      "Word frequency bags for files and directories",
		Long:       "",
		ConfigPath: "$HOME/.databricks/labs/wordbag",
		EnvPrefix:  "DATABRICKS_LABS_WORDBAG",
		Bind: func(flags *pflag.FlagSet, cfg *Config) {
			flags.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "Number of files read concurrently")
			flags.StringVar(&cfg.Stopwords, "stopwords", "", "File with words to skip, one per line")
			flags.BoolVar(&cfg.Fold, "fold", true, "Lowercase words before counting")
		},
	}).With(
		newCount(),
		newDiff(),
		newCommon(),
	).Run(ctx)
}

func newTokenizer(cmd *lite.Root[Config]) (*wordfreq.Tokenizer, error) {
	tok := &wordfreq.Tokenizer{Fold: cmd.Config.Fold}
	if cmd.Config.Stopwords != "" {
		stop, err := wordfreq.LoadStopwords(cmd.Config.Stopwords)
		if err != nil {
			return nil, err
		}
		tok.Stopwords = stop
	}
	return tok, nil
}
