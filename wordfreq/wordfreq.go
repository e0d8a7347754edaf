// Package wordfreq builds word-frequency multisets out of readers, files
// and directory trees.
package wordfreq

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/databrickslabs/sandbox/buckets/fileset"
	"github.com/databrickslabs/sandbox/buckets/iterutil"
	"github.com/databrickslabs/sandbox/buckets/multiset"
	"github.com/databrickslabs/sandbox/buckets/parallel"
	"github.com/databrickslabs/sandbox/buckets/sets"
)

// Rule rewrites text before tokenization.
func Rule(regex, replace string) *rule {
	return &rule{regexp.MustCompile(regex), replace}
}

type rule struct {
	regex   *regexp.Regexp
	replace string
}

func (r *rule) Apply(src string) string {
	return r.regex.ReplaceAllString(src, r.replace)
}

// Pipeline applies rules in order.
type Pipeline []*rule

func (p Pipeline) Apply(src string) string {
	for _, v := range p {
		src = v.Apply(src)
	}
	return src
}

// letters and digits, with optional inner apostrophes: don't, o'clock
var words = regexp.MustCompile(`[\p{L}\p{N}]+(?:'[\p{L}]+)*`)

// Tokenizer splits text into word tokens suitable for counting.
type Tokenizer struct {
	// Fold lowercases tokens before counting.
	Fold bool
	// Stopwords are dropped from the count when set. Matching happens
	// after folding, so the set should hold lowercase words when Fold
	// is on.
	Stopwords *sets.Hash[string]
	// Rules rewrite the text before it is split into tokens.
	Rules Pipeline
}

// Tokens returns the sequence of word tokens found in text.
func (t *Tokenizer) Tokens(text string) iter.Seq[string] {
	text = t.Rules.Apply(text)
	if t.Fold {
		text = strings.ToLower(text)
	}
	seq := slices.Values(words.FindAllString(text, -1))
	if t.Stopwords != nil {
		seq = iterutil.Filter(seq, func(word string) bool {
			return !t.Stopwords.Has(word)
		})
	}
	return seq
}

// Count reads r to the end and counts every token in it.
func (t *Tokenizer) Count(r io.Reader) (*multiset.Multiset[string], error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return multiset.Collect(t.Tokens(string(raw))), nil
}

// CountFiles counts tokens across all files concurrently and merges the
// per-file results into one multiset. Progress messages are offered to
// updates when it is non-nil; slow consumers miss some.
func (t *Tokenizer) CountFiles(ctx context.Context, workers int, files fileset.FileSet, updates chan<- string) (*multiset.Multiset[string], error) {
	chunks, err := parallel.Tasks(ctx, workers, files, func(ctx context.Context, f fileset.File) (*multiset.Multiset[string], error) {
		raw, err := f.Raw()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Relative, err)
		}
		if updates != nil {
			select {
			case updates <- f.Relative:
			default:
			}
		}
		return multiset.Collect(t.Tokens(string(raw))), nil
	})
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	total := multiset.New[string]()
	for _, chunk := range chunks {
		total = multiset.Sum(total, chunk)
	}
	return total, nil
}

// LoadStopwords reads a newline-separated word list. Blank lines and
// lines starting with # are skipped; words are lowercased.
func LoadStopwords(path string) (*sets.Hash[string], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stopwords: %w", err)
	}
	stop := sets.NewHash[string]()
	for line := range strings.Lines(string(raw)) {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		stop.Add(strings.ToLower(word))
	}
	return stop, nil
}
