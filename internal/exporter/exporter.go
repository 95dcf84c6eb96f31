// Package exporter writes the contents of an xsearch store as a YAML seed
// that the importer can load, so a catalogue can be moved between stores
// or checked into version control.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/xsearch/internal/importer"
	"github.com/jpl-au/xsearch/internal/progress"
	"github.com/jpl-au/xsearch/internal/service"
)

// ErrFileExists is returned when the destination exists and Force is unset.
var ErrFileExists = errors.New("file exists")

// Options configures an export operation.
type Options struct {
	Force bool // Overwrite an existing file
}

// Result contains the outcome of an export operation.
type Result struct {
	Taxonomies int    `json:"taxonomies"` // Registrations written
	Posts      int    `json:"posts"`      // Posts written
	Path       string `json:"path"`       // File written
}

// Build reads every registration and post, with metadata and terms, into
// a seed. Posts keep their ID order; drafts are included.
func Build(ctx context.Context, svc service.Service) (*importer.Seed, error) {
	regs, err := svc.Registrations(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := svc.Posts(ctx)
	if err != nil {
		return nil, err
	}

	seed := &importer.Seed{}
	for _, r := range regs {
		seed.Taxonomies = append(seed.Taxonomies, importer.Taxonomy{Name: r.Taxonomy, PostTypes: r.PostTypes})
	}

	prog := progress.New("Exporting", len(posts))
	defer prog.Done()

	for _, p := range posts {
		sp := importer.Post{
			Title:   p.Title,
			Content: p.Content,
			Type:    p.Type,
			Status:  p.Status,
			Date:    time.Unix(p.Date, 0).UTC(),
		}

		meta, err := svc.Meta(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("post %d: %w", p.ID, err)
		}
		for _, m := range meta {
			if sp.Meta == nil {
				sp.Meta = map[string]importer.Values{}
			}
			sp.Meta[m.Key] = append(sp.Meta[m.Key], m.Value)
		}

		terms, err := svc.Terms(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("post %d: %w", p.ID, err)
		}
		for _, t := range terms {
			if sp.Terms == nil {
				sp.Terms = map[string]importer.Values{}
			}
			sp.Terms[t.Taxonomy] = append(sp.Terms[t.Taxonomy], t.Name)
		}

		seed.Posts = append(seed.Posts, sp)
		prog.Step()
	}
	return seed, nil
}

// Write encodes seed as YAML.
func Write(w io.Writer, seed *importer.Seed) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seed); err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	return enc.Close()
}

// Run exports the store to the seed file dst.
func Run(ctx context.Context, w io.Writer, svc service.Service, dst string, opts Options) (Result, error) {
	seed, err := Build(ctx, svc)
	if err != nil {
		return Result{}, err
	}

	if !strings.HasSuffix(dst, ".yaml") && !strings.HasSuffix(dst, ".yml") {
		dst += ".yaml"
	}
	dir, name := filepath.Dir(dst), filepath.Base(dst)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating directory: %w", err)
	}

	// Open directory as root for safe file operations
	root, err := os.OpenRoot(dir)
	if err != nil {
		return Result{}, fmt.Errorf("opening destination: %w", err)
	}
	defer root.Close()

	if err := writeSeedInRoot(root, name, seed, opts.Force); err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Exported: %d posts, %d taxonomies -> %s\n", len(seed.Posts), len(seed.Taxonomies), dst)
	return Result{Taxonomies: len(seed.Taxonomies), Posts: len(seed.Posts), Path: dst}, nil
}

// writeSeedInRoot writes the seed to name within root, refusing to replace
// an existing file unless force is set.
func writeSeedInRoot(root *os.Root, name string, seed *importer.Seed, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := root.OpenFile(name, flags, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrFileExists, name)
	}
	if err != nil {
		return fmt.Errorf("creating file %s: %w", name, err)
	}

	if err := Write(f, seed); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
