// Package importer loads YAML seed files into an xsearch store.
//
// A seed lists taxonomy registrations followed by posts, each with optional
// metadata and terms:
//
//	taxonomies:
//	  - name: product_cat
//	    post_types: [product]
//	posts:
//	  - title: MX Master
//	    type: product
//	    meta:
//	      sku: MX-3
//	      colour: [graphite, white]
//	    terms:
//	      product_cat: [Mice, Wireless]
//
// The whole seed is written in one transaction: a bad post leaves the
// store as it was.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/xsearch/internal/progress"
	"github.com/jpl-au/xsearch/internal/service"
	"github.com/jpl-au/xsearch/internal/store"
	"github.com/jpl-au/xsearch/internal/validate"
)

// Values is a list of strings that also accepts a single scalar in YAML.
type Values []string

// UnmarshalYAML accepts either `key: value` or `key: [a, b]`.
func (v *Values) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*v = Values{n.Value}
		return nil
	}
	var list []string
	if err := n.Decode(&list); err != nil {
		return err
	}
	*v = list
	return nil
}

// MarshalYAML writes a single value as a scalar, the form most seeds use.
func (v Values) MarshalYAML() (any, error) {
	if len(v) == 1 {
		return v[0], nil
	}
	return []string(v), nil
}

// Taxonomy is one registration in a seed.
type Taxonomy struct {
	Name      string   `yaml:"name"`
	PostTypes []string `yaml:"post_types"`
}

// Post is one post in a seed. Meta and Terms map a key or taxonomy to its
// values; keys are written in sorted order.
type Post struct {
	Title   string            `yaml:"title"`
	Content string            `yaml:"content,omitempty"`
	Type    string            `yaml:"type,omitempty"`
	Status  string            `yaml:"status,omitempty"`
	Date    time.Time         `yaml:"date,omitempty"`
	Meta    map[string]Values `yaml:"meta,omitempty"`
	Terms   map[string]Values `yaml:"terms,omitempty"`
}

// Seed is a parsed seed file.
type Seed struct {
	Taxonomies []Taxonomy `yaml:"taxonomies"`
	Posts      []Post     `yaml:"posts"`
}

// Options configures an import operation.
type Options struct {
	DryRun bool // Validate and report without writing
}

// Result contains the outcome of an import operation.
type Result struct {
	Taxonomies int     `json:"taxonomies"` // Registrations written (or that would be)
	Posts      int     `json:"posts"`      // Posts written (or that would be)
	Meta       int     `json:"meta"`       // Meta rows written
	Terms      int     `json:"terms"`      // Term assignments written
	IDs        []int64 `json:"ids"`        // IDs of the new posts; empty on a dry run
}

// ErrEmptySeed is returned when a seed has neither taxonomies nor posts.
var ErrEmptySeed = errors.New("seed has no taxonomies or posts")

// Parse decodes and validates a seed. Unknown fields are rejected so a
// typo does not silently drop data.
func Parse(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Seed
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySeed
		}
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every identifier and term in the seed.
func (s *Seed) Validate() error {
	if len(s.Taxonomies) == 0 && len(s.Posts) == 0 {
		return ErrEmptySeed
	}
	for i, t := range s.Taxonomies {
		if err := validate.Taxonomy(t.Name); err != nil {
			return fmt.Errorf("taxonomies[%d]: %w", i, err)
		}
		if len(t.PostTypes) == 0 {
			return fmt.Errorf("taxonomies[%d]: %w: no post types", i, validate.ErrInvalidPostType)
		}
		for _, pt := range t.PostTypes {
			if err := validate.PostType(pt); err != nil {
				return fmt.Errorf("taxonomies[%d]: %w", i, err)
			}
		}
	}
	for i, p := range s.Posts {
		if err := validate.Title(p.Title); err != nil {
			return fmt.Errorf("posts[%d]: %w", i, err)
		}
		if p.Status != "" {
			if err := validate.Status(p.Status); err != nil {
				return fmt.Errorf("posts[%d]: %w", i, err)
			}
		}
		if p.Type != "" {
			if err := validate.PostType(p.Type); err != nil {
				return fmt.Errorf("posts[%d]: %w", i, err)
			}
		}
		for key := range p.Meta {
			if err := validate.MetaKey(key); err != nil {
				return fmt.Errorf("posts[%d]: %w", i, err)
			}
		}
		for tax, names := range p.Terms {
			if err := validate.Taxonomy(tax); err != nil {
				return fmt.Errorf("posts[%d]: %w", i, err)
			}
			for _, name := range names {
				if err := validate.Term(name); err != nil {
					return fmt.Errorf("posts[%d]: %w", i, err)
				}
			}
		}
	}
	return nil
}

// RunFile parses the seed at path and imports it.
func RunFile(ctx context.Context, w io.Writer, svc service.Service, path string, opts Options) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	seed, err := Parse(f)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return Run(ctx, w, svc, seed, opts)
}

// Run writes seed through svc. Taxonomies are registered before any post,
// so a seed can both declare a taxonomy and assign its terms.
func Run(ctx context.Context, w io.Writer, svc service.Service, seed *Seed, opts Options) (Result, error) {
	if opts.DryRun {
		return dryRun(w, seed), nil
	}

	var result Result
	prog := progress.New("Importing", len(seed.Posts))
	defer prog.Done()

	err := svc.Batch(ctx, func(b store.BatchWriter) error {
		result = Result{}
		for _, t := range seed.Taxonomies {
			if err := b.RegisterTaxonomy(ctx, t.Name, t.PostTypes); err != nil {
				return err
			}
			result.Taxonomies++
		}

		for i, p := range seed.Posts {
			id, err := b.InsertPost(ctx, store.Post{
				Title:   p.Title,
				Content: p.Content,
				Type:    p.Type,
				Status:  p.Status,
				Date:    unix(p.Date),
			})
			if err != nil {
				return fmt.Errorf("posts[%d]: %w", i, err)
			}

			for _, key := range sortedKeys(p.Meta) {
				for _, v := range p.Meta[key] {
					if err := b.AddMeta(ctx, id, key, v); err != nil {
						return fmt.Errorf("posts[%d]: %w", i, err)
					}
					result.Meta++
				}
			}
			for _, tax := range sortedKeys(p.Terms) {
				for _, name := range p.Terms[tax] {
					if err := b.AssignTerm(ctx, id, tax, name); err != nil {
						return fmt.Errorf("posts[%d]: %w", i, err)
					}
					result.Terms++
				}
			}

			result.Posts++
			result.IDs = append(result.IDs, id)
			prog.Step()
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	for i, id := range result.IDs {
		fmt.Fprintf(w, "Imported: #%d %s\n", id, seed.Posts[i].Title)
	}
	return result, nil
}

// dryRun reports what Run would write.
func dryRun(w io.Writer, seed *Seed) Result {
	var result Result
	for _, t := range seed.Taxonomies {
		fmt.Fprintf(w, "Would register: %s for %v\n", t.Name, t.PostTypes)
		result.Taxonomies++
	}
	for _, p := range seed.Posts {
		fmt.Fprintf(w, "Would import: %s\n", p.Title)
		for _, v := range p.Meta {
			result.Meta += len(v)
		}
		for _, v := range p.Terms {
			result.Terms += len(v)
		}
		result.Posts++
	}
	return result
}

func unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func sortedKeys(m map[string]Values) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
