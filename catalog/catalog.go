package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mmuldo/huecode/internal/errs"
	"github.com/mmuldo/huecode/internal/logger"
	"github.com/mmuldo/huecode/palette"
)

// ErrMissingColor marks an item that has no swatch to classify.
var ErrMissingColor = errors.New("missing color")

// Item is a catalog entry and its stone color swatch.
type Item struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Catalog is the exported list of catalog items.
type Catalog struct {
	Items []Item `yaml:"items"`
}

// Labeled is an item with its assigned reference color, or the reason it
// could not be classified.
type Labeled struct {
	Item   Item
	RGB    palette.RGB
	Result palette.Result
	Err    error
}

// Load reads a YAML catalog from path.
func Load(path string) (Catalog, error) {
	b, e := os.ReadFile(path)
	if e != nil {
		return Catalog{}, &errs.OpError{Op: "catalog.load", Kind: errs.KindNotFound, Path: path, Err: e}
	}

	var c Catalog
	if e := yaml.Unmarshal(b, &c); e != nil {
		return Catalog{}, &errs.OpError{Op: "catalog.load", Kind: errs.KindInvalidConfig, Path: path, Err: e}
	}

	for i, it := range c.Items {
		if strings.TrimSpace(it.Name) == "" {
			return Catalog{}, &errs.OpError{
				Op:   "catalog.load",
				Kind: errs.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("items[%d].name is required", i),
			}
		}
	}

	return c, nil
}

// ClassifyAll labels items using up to workers goroutines. Results keep
// the input order. Bad swatches are reported per item and do not stop the
// batch.
func ClassifyAll(ctx context.Context, items []Item, workers int) ([]Labeled, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	out := make([]Labeled, len(items))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = label(items[i])
			}
		}()
	}

dispatch:
	for i := range items {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if e := ctx.Err(); e != nil {
		return nil, e
	}
	return out, nil
}

// Summary counts labeled items per reference code.
func Summary(ls []Labeled) map[string]int {
	m := make(map[string]int)
	for _, l := range ls {
		if l.Err != nil {
			continue
		}
		m[l.Result.Reference.Code]++
	}
	return m
}

func label(it Item) Labeled {
	l := Labeled{Item: it}

	if strings.TrimSpace(it.Color) == "" {
		l.Err = errs.New("catalog.classify", errs.KindInvalidInput, ErrMissingColor)
		logger.L().Warn("catalog.skipped", "item", it.Name, "err", l.Err)
		return l
	}

	rgb, e := palette.ParseHex(it.Color)
	if e != nil {
		l.Err = errs.New("catalog.classify", errs.KindInvalidInput, e)
		logger.L().Warn("catalog.skipped", "item", it.Name, "err", l.Err)
		return l
	}

	l.RGB = rgb
	l.Result = palette.Classify(rgb)
	logger.L().Debug("catalog.classified",
		"item", it.Name,
		"color", rgb.Hex(),
		"code", l.Result.Reference.Code,
		"distance", l.Result.Distance,
	)
	return l
}
