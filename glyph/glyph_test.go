package glyph

import (
	"context"
	"errors"
	"testing"
)

func TestSliceProvider(t *testing.T) {
	p := SliceProvider{
		{{Text: "a"}},
		{{Text: "b"}, {Text: "c"}},
	}
	ctx := context.Background()

	count, err := p.PageCount(ctx)
	if err != nil || count != 2 {
		t.Fatalf("PageCount = %d, %v", count, err)
	}

	runs, err := p.Page(ctx, 1)
	if err != nil || len(runs) != 2 {
		t.Fatalf("Page(1) = %v, %v", runs, err)
	}

	if _, err := p.Page(ctx, 2); err == nil {
		t.Error("Expected out-of-range error")
	}
	if _, err := p.Page(ctx, -1); err == nil {
		t.Error("Expected out-of-range error")
	}
}

func TestSliceProvider_ContextCancelled(t *testing.T) {
	p := SliceProvider{{{Text: "a"}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.PageCount(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("PageCount: expected context.Canceled, got %v", err)
	}
	if _, err := p.Page(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Page: expected context.Canceled, got %v", err)
	}
}
