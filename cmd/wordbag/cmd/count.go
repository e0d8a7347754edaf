package cmd

import (
	"maps"
	"slices"
	"strings"

	"github.com/databrickslabs/sandbox/buckets/counters"
	"github.com/databrickslabs/sandbox/buckets/fileset"
	"github.com/databrickslabs/sandbox/buckets/iterutil"
	"github.com/databrickslabs/sandbox/buckets/lite"
	"github.com/databrickslabs/sandbox/buckets/multiset"
	"github.com/databrickslabs/sandbox/buckets/render"
	"github.com/databrickslabs/sandbox/buckets/sets"
	"github.com/databrickslabs/sandbox/buckets/wordfreq"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newCount() lite.Registerable[Config] {
	type countRequest struct {
		top      int
		minCount int
		alpha    bool
		json     bool
	}
	return &lite.Command[Config, countRequest]{
		Name:  "count",
		Short: "Count word frequencies in files and directories, or stdin without arguments",
		Args:  cobra.ArbitraryArgs,
		Flags: func(flags *pflag.FlagSet, req *countRequest) {
			flags.IntVar(&req.top, "top", 20, "Keep only the most frequent words, 0 for all")
			flags.IntVar(&req.minCount, "min-count", 1, "Skip words occurring fewer times")
			flags.BoolVar(&req.alpha, "alpha", false, "Order words alphabetically instead of by frequency")
			flags.BoolVar(&req.json, "json", false, "Render the report as JSON")
		},
		Run: func(cmd *lite.Root[Config], req *countRequest, args []string) error {
			tok, err := newTokenizer(cmd)
			if err != nil {
				return err
			}
			var bag *multiset.Multiset[string]
			if len(args) == 0 {
				bag, err = tok.Count(cmd.InOrStdin())
			} else {
				bag, err = countPaths(cmd, tok, args...)
			}
			if err != nil {
				return err
			}
			report := countReport{
				Total:    bag.Count(),
				Distinct: bag.DistinctCount(),
			}
			freq := counters.Counter[string](maps.Collect(bag.Counts()))
			stats := iterutil.Filter(slices.Values(freq.Stats()), func(s counters.Pair[string]) bool {
				return s.Count >= req.minCount
			})
			if req.top > 0 {
				stats = iterutil.Take(stats, req.top)
			}
			for s := range stats {
				report.Words = append(report.Words, wordCount{s.Key, s.Count})
			}
			if req.alpha {
				index := sets.NewSortedString()
				for _, w := range report.Words {
					index.Add(w.Word)
				}
				report.Words = report.Words[:0]
				for _, word := range index.ToSlice() {
					report.Words = append(report.Words, wordCount{word, bag.Occurrences(word)})
				}
			}
			if req.json {
				return render.RenderJSON(cmd.OutOrStdout(), report)
			}
			return render.RenderTemplate(cmd.OutOrStdout(), countTemplate, report)
		},
	}
}

func countPaths(cmd *lite.Root[Config], tok *wordfreq.Tokenizer, paths ...string) (*multiset.Multiset[string], error) {
	ctx := lite.LogContext(cmd.Context(), "paths", strings.Join(paths, ","))
	files, err := fileset.New(paths...)
	if err != nil {
		return nil, err
	}
	updates := render.Spinner(ctx, cmd.ErrOrStderr())
	defer close(updates)
	return tok.CountFiles(ctx, cmd.Config.Workers, files, updates)
}

type wordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type countReport struct {
	Total    int         `json:"total"`
	Distinct int         `json:"distinct"`
	Words    []wordCount `json:"words,omitempty"`
}

const countTemplate = `Count	Word{{range .Words}}
{{.Count}}	{{.Word}}{{end}}

{{.Total}} words, {{.Distinct}} distinct
`
