package cmd

import (
	"maps"

	"github.com/databrickslabs/sandbox/buckets/counters"
	"github.com/databrickslabs/sandbox/buckets/lite"
	"github.com/databrickslabs/sandbox/buckets/multiset"
	"github.com/databrickslabs/sandbox/buckets/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newDiff() lite.Registerable[Config] {
	type diffRequest struct {
		json bool
	}
	return &lite.Command[Config, diffRequest]{
		Name:  "diff",
		Short: "Compare word frequencies of two files or directories",
		Args:  cobra.ExactArgs(2),
		Flags: func(flags *pflag.FlagSet, req *diffRequest) {
			flags.BoolVar(&req.json, "json", false, "Render the report as JSON")
		},
		Run: func(cmd *lite.Root[Config], req *diffRequest, args []string) error {
			tok, err := newTokenizer(cmd)
			if err != nil {
				return err
			}
			left, err := countPaths(cmd, tok, args[0])
			if err != nil {
				return err
			}
			right, err := countPaths(cmd, tok, args[1])
			if err != nil {
				return err
			}
			report := diffReport{
				Left:      args[0],
				Right:     args[1],
				OnlyLeft:  surplus(left, right),
				OnlyRight: surplus(right, left),
			}
			if req.json {
				return render.RenderJSON(cmd.OutOrStdout(), report)
			}
			return render.RenderTemplate(cmd.OutOrStdout(), diffTemplate, report)
		},
	}
}

// surplus lists the occurrences a has over b, most frequent first.
func surplus(a, b *multiset.Multiset[string]) (out []wordCount) {
	extra := multiset.Difference(a, b)
	freq := counters.Counter[string](maps.Collect(extra.Counts()))
	for _, s := range freq.Stats() {
		out = append(out, wordCount{s.Key, s.Count})
	}
	return out
}

type diffReport struct {
	Left      string      `json:"left"`
	Right     string      `json:"right"`
	OnlyLeft  []wordCount `json:"only_left,omitempty"`
	OnlyRight []wordCount `json:"only_right,omitempty"`
}

const diffTemplate = `Where	Count	Word{{range .OnlyLeft}}
{{$.Left}}	{{.Count}}	{{.Word}}{{end}}{{range .OnlyRight}}
{{$.Right}}	{{.Count}}	{{.Word}}{{end}}
`
