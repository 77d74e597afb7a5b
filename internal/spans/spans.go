// Package spans loads span records from JSON documents and converts them to
// playground instances in bulk.
package spans

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/n0madic/go-playground/internal/playground"
)

// ErrNoAttributes is returned for a span record without a string or object
// attributes field.
var ErrNoAttributes = errors.New("span record has no attributes")

// idPaths are tried in order to find a span id.
var idPaths = []string{"id", "span_id", "context.span_id"}

// Load reads span records from r. The input may be a single JSON object, an
// array of objects, or one object per line.
func Load(r io.Reader) ([]playground.Span, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read spans: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, nil
	}

	if gjson.Valid(text) {
		doc := gjson.Parse(text)
		switch {
		case doc.IsObject():
			s, err := spanFromRecord(doc)
			if err != nil {
				return nil, err
			}
			return []playground.Span{s}, nil
		case doc.IsArray():
			return spansFromRecords(doc.Array())
		default:
			return nil, fmt.Errorf("span input must be an object or an array, got %s", doc.Type)
		}
	}

	var records []gjson.Result
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			return nil, fmt.Errorf("line %d: invalid JSON", i+1)
		}
		records = append(records, gjson.Parse(line))
	}
	return spansFromRecords(records)
}

func spansFromRecords(records []gjson.Result) ([]playground.Span, error) {
	out := make([]playground.Span, 0, len(records))
	for i, rec := range records {
		s, err := spanFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// spanFromRecord accepts attributes either as a JSON-encoded string or as an
// inline object.
func spanFromRecord(rec gjson.Result) (playground.Span, error) {
	if !rec.IsObject() {
		return playground.Span{}, fmt.Errorf("span record must be an object, got %s", rec.Type)
	}
	var s playground.Span
	for _, p := range idPaths {
		if id := rec.Get(p); id.Type == gjson.String {
			s.ID = id.Str
			break
		}
	}
	attrs := rec.Get("attributes")
	switch {
	case attrs.Type == gjson.String:
		s.Attributes = attrs.Str
	case attrs.IsObject():
		s.Attributes = attrs.Raw
	default:
		return playground.Span{}, ErrNoAttributes
	}
	return s, nil
}

// BuildAll converts spans with at most limit concurrent conversions. A limit
// of zero or less means no limit. Results keep the order of spans.
func BuildAll(ctx context.Context, spans []playground.Span, limit int) ([]playground.Result, error) {
	results := make([]playground.Result, len(spans))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, s := range spans {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = playground.FromSpan(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
