package cmd

import (
	"slices"
	"strings"

	"github.com/databrickslabs/sandbox/buckets/iterutil"
	"github.com/databrickslabs/sandbox/buckets/lite"
	"github.com/databrickslabs/sandbox/buckets/multiset"
	"github.com/databrickslabs/sandbox/buckets/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newCommon() lite.Registerable[Config] {
	type commonRequest struct {
		columns int
	}
	return &lite.Command[Config, commonRequest]{
		Name:  "common",
		Short: "Show the words every input shares",
		Args:  cobra.MinimumNArgs(2),
		Flags: func(flags *pflag.FlagSet, req *commonRequest) {
			flags.IntVar(&req.columns, "columns", 4, "Words per output row")
		},
		Run: func(cmd *lite.Root[Config], req *commonRequest, args []string) error {
			if req.columns < 1 {
				req.columns = 1
			}
			tok, err := newTokenizer(cmd)
			if err != nil {
				return err
			}
			shared, err := countPaths(cmd, tok, args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				bag, err := countPaths(cmd, tok, arg)
				if err != nil {
					return err
				}
				shared = multiset.Intersection(shared, bag)
			}
			words := slices.Sorted(shared.Distinct())
			var rows []string
			for chunk := range iterutil.Chunk(slices.Values(words), req.columns) {
				rows = append(rows, strings.Join(chunk, "\t"))
			}
			return render.RenderTemplate(cmd.OutOrStdout(), commonTemplate, rows)
		},
	}
}

const commonTemplate = `{{range .}}{{.}}
{{end}}`
