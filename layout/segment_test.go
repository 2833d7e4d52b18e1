package layout

import "testing"

func TestSegmentLine_Blank(t *testing.T) {
	blocks, inList := SegmentLine("   \t ", true)

	if len(blocks) != 1 || blocks[0].Kind != BlockBlank {
		t.Fatalf("Expected a single blank block, got %v", blocks)
	}
	if inList {
		t.Error("Expected blank line to clear list state")
	}
}

func TestSegmentLine_LeadingBullet(t *testing.T) {
	blocks, inList := SegmentLine("• First item", false)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Kind != BlockBullet || blocks[0].Text != "First item" {
		t.Errorf("Got %+v", blocks[0])
	}
	if !inList {
		t.Error("Expected inList to be set")
	}
}

func TestSegmentLine_BulletGlyphVariants(t *testing.T) {
	for _, prefix := range []string{"●", "○", "■", "▪", "✓", "◆", "★", "➤", "⮞"} {
		blocks, _ := SegmentLine(prefix+" item", false)
		if len(blocks) != 1 || blocks[0].Kind != BlockBullet || blocks[0].Text != "item" {
			t.Errorf("Prefix %q: got %v", prefix, blocks)
		}
	}
}

func TestSegmentLine_DashBullets(t *testing.T) {
	tests := []struct {
		text     string
		wantKind BlockKind
		wantText string
	}{
		{"- dash item", BlockBullet, "dash item"},
		{"– en-dash item", BlockBullet, "en-dash item"},
		{"— em-dash item", BlockBullet, "em-dash item"},
		// A dash not followed by whitespace is prose, not a marker.
		{"-hyphenated start", BlockParagraph, "-hyphenated start"},
	}

	for _, tt := range tests {
		blocks, _ := SegmentLine(tt.text, false)
		if len(blocks) != 1 || blocks[0].Kind != tt.wantKind || blocks[0].Text != tt.wantText {
			t.Errorf("%q: got %v", tt.text, blocks)
		}
	}
}

func TestSegmentLine_Numbered(t *testing.T) {
	tests := []struct {
		text     string
		wantText string
	}{
		{"1. Step one", "Step one"},
		{"12) Later step", "Later step"},
		{"a. Option a", "Option a"},
		{"b) Option b", "Option b"},
		{"iv. Fourth", "Fourth"},
		{"ii) Second", "Second"},
	}

	for _, tt := range tests {
		blocks, inList := SegmentLine(tt.text, false)
		if len(blocks) != 1 || blocks[0].Kind != BlockNumbered || blocks[0].Text != tt.wantText {
			t.Errorf("%q: got %v", tt.text, blocks)
		}
		if !inList {
			t.Errorf("%q: expected inList set", tt.text)
		}
	}
}

func TestSegmentLine_NumberingNeedsWhitespace(t *testing.T) {
	// "1.5 litres" and "i.e." are prose, not list items.
	for _, text := range []string{"1.5 litres of water", "i.e.the usual case", "3.requires no gap"} {
		blocks, inList := SegmentLine(text, false)
		if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
			t.Errorf("%q: got %v", text, blocks)
		}
		if inList {
			t.Errorf("%q: expected paragraph to clear list state", text)
		}
	}
}

func TestSegmentLine_MidlineBullets(t *testing.T) {
	blocks, inList := SegmentLine("Intro text • bullet one • bullet two", false)

	if len(blocks) != 3 {
		t.Fatalf("Expected 3 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Kind != BlockParagraph || blocks[0].Text != "Intro text" {
		t.Errorf("Leading block: got %+v", blocks[0])
	}
	if blocks[1].Kind != BlockBullet || blocks[1].Text != "bullet one" {
		t.Errorf("First item: got %+v", blocks[1])
	}
	if blocks[2].Kind != BlockBullet || blocks[2].Text != "bullet two" {
		t.Errorf("Second item: got %+v", blocks[2])
	}
	if !inList {
		t.Error("Expected inList set")
	}
}

func TestSegmentLine_MidlineBulletsNoLeadingSpan(t *testing.T) {
	blocks, _ := SegmentLine("• one • two", false)

	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %v", blocks)
	}
	for i, want := range []string{"one", "two"} {
		if blocks[i].Kind != BlockBullet || blocks[i].Text != want {
			t.Errorf("Block %d: got %+v", i, blocks[i])
		}
	}
}

func TestSegmentLine_MidlineDashesAreProse(t *testing.T) {
	blocks, _ := SegmentLine("a well-known case — mostly", false)

	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Errorf("Expected one paragraph, got %v", blocks)
	}
	if blocks[0].Text != "a well-known case — mostly" {
		t.Errorf("Got %q", blocks[0].Text)
	}
}

func TestSegmentLine_ParagraphTerminatesList(t *testing.T) {
	blocks, inList := SegmentLine("Plain text after a list", true)

	if len(blocks) != 2 {
		t.Fatalf("Expected separator plus paragraph, got %v", blocks)
	}
	if blocks[0].Kind != BlockBlank {
		t.Errorf("Expected leading blank separator, got %+v", blocks[0])
	}
	if blocks[1].Kind != BlockParagraph || blocks[1].Text != "Plain text after a list" {
		t.Errorf("Got %+v", blocks[1])
	}
	if inList {
		t.Error("Expected paragraph to clear list state")
	}
}

func TestSegmentLine_ParagraphOutsideList(t *testing.T) {
	blocks, _ := SegmentLine("Just a sentence.", false)

	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Errorf("Got %v", blocks)
	}
}

func TestBlock_Markdown(t *testing.T) {
	tests := []struct {
		block Block
		want  string
	}{
		{Block{Kind: BlockBullet, Text: "item"}, "- item"},
		{Block{Kind: BlockNumbered, Text: "step"}, "1. step"},
		{Block{Kind: BlockParagraph, Text: "text"}, "text"},
		{Block{Kind: BlockBlank}, ""},
	}

	for _, tt := range tests {
		if got := tt.block.Markdown(); got != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.block.Kind, tt.want, got)
		}
	}
}

func TestBlockKind_String(t *testing.T) {
	tests := map[BlockKind]string{
		BlockBlank:     "blank",
		BlockParagraph: "paragraph",
		BlockBullet:    "bullet",
		BlockNumbered:  "numbered",
		BlockKind(99):  "unknown",
	}

	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
