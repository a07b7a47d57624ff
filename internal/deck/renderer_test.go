package deck

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

func sampleContent() *types.SlideContent {
	return &types.SlideContent{
		Title: "Quarterly Review",
		Slides: []types.Slide{
			{Title: "Highlights", Content: []string{"Revenue up", "Churn down"}},
			{Title: "Next Steps", Content: []string{"Hire", "Ship", "Repeat"}},
		},
	}
}

func renderSample(t *testing.T, content *types.SlideContent, themeID string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := NewRenderer().Render(content, themeID, path); err != nil {
		t.Fatalf("Render(): %v", err)
	}
	return path
}

func partNames(t *testing.T, path string) map[string]bool {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	return names
}

func readPart(t *testing.T, path, name string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read part %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestRenderSlideCount(t *testing.T) {
	path := renderSample(t, sampleContent(), "professional")
	names := partNames(t, path)

	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
	} {
		if !names[want] {
			t.Errorf("package missing part %s", want)
		}
	}
	if names["ppt/slides/slide4.xml"] {
		t.Error("package has an extra slide part")
	}

	pres := readPart(t, path, "ppt/presentation.xml")
	if got := strings.Count(pres, "<p:sldId "); got != 3 {
		t.Errorf("presentation lists %d slides, want 3", got)
	}
}

func TestRenderFooters(t *testing.T) {
	path := renderSample(t, sampleContent(), "professional")

	for i := 1; i <= 3; i++ {
		slide := readPart(t, path, fmt.Sprintf("ppt/slides/slide%d.xml", i))
		footer := fmt.Sprintf("<a:t>%d/3</a:t>", i)
		if !strings.Contains(slide, footer) {
			t.Errorf("slide %d missing footer %s", i, footer)
		}
	}
}

func TestRenderTitleSlide(t *testing.T) {
	path := renderSample(t, sampleContent(), "professional")
	slide := readPart(t, path, "ppt/slides/slide1.xml")

	if !strings.Contains(slide, "<a:t>Quarterly Review</a:t>") {
		t.Error("title slide missing deck title")
	}
	if !strings.Contains(slide, "<a:t>Generated from audio transcript</a:t>") {
		t.Error("title slide missing subtitle")
	}
	if !strings.Contains(slide, `algn="ctr"`) {
		t.Error("title slide text is not centered")
	}
	// Primary title color and accent bar fill for the professional palette.
	if !strings.Contains(slide, `val="1F4E79"`) {
		t.Error("title slide missing primary color")
	}
	if !strings.Contains(slide, `val="ED7D31"`) {
		t.Error("title slide missing accent bar")
	}
}

func TestRenderContentSlide(t *testing.T) {
	path := renderSample(t, sampleContent(), "professional")
	slide := readPart(t, path, "ppt/slides/slide2.xml")

	if !strings.Contains(slide, "<a:t>Highlights</a:t>") {
		t.Error("content slide missing its title")
	}
	for _, bullet := range []string{"<a:t>• Revenue up</a:t>", "<a:t>• Churn down</a:t>"} {
		if !strings.Contains(slide, bullet) {
			t.Errorf("content slide missing bullet %s", bullet)
		}
	}
	// Deck-title strip appears on every slide after the title slide.
	if strings.Count(slide, "<a:t>Quarterly Review</a:t>") != 1 {
		t.Error("content slide missing deck-title strip")
	}
}

func TestRenderTruncatesDeckTitleStrip(t *testing.T) {
	content := sampleContent()
	content.Title = strings.Repeat("Long Deck Title ", 10)
	path := renderSample(t, content, "professional")
	slide := readPart(t, path, "ppt/slides/slide2.xml")

	want := "<a:t>" + escape(content.Title[:deckStripMaxChars]+"...") + "</a:t>"
	if !strings.Contains(slide, want) {
		t.Errorf("deck-title strip not truncated, want %s", want)
	}
}

func TestRenderUnknownThemeFallsBack(t *testing.T) {
	path := renderSample(t, sampleContent(), "no-such-theme")

	theme := readPart(t, path, "ppt/theme/theme1.xml")
	if !strings.Contains(theme, `name="Professional"`) {
		t.Error("unknown theme did not fall back to the default palette")
	}
	slide := readPart(t, path, "ppt/slides/slide1.xml")
	if !strings.Contains(slide, `val="FFFFFF"`) {
		t.Error("fallback background color missing from slide")
	}
}

func TestRenderAppliesThemePalette(t *testing.T) {
	path := renderSample(t, sampleContent(), "midnight")
	slide := readPart(t, path, "ppt/slides/slide1.xml")

	if !strings.Contains(slide, `val="0F1C2E"`) {
		t.Error("midnight background missing")
	}
	if !strings.Contains(slide, `val="64B5F6"`) {
		t.Error("midnight primary missing")
	}
}

func TestRenderEscapesMarkup(t *testing.T) {
	content := &types.SlideContent{
		Title:  "Q&A <Live>",
		Slides: []types.Slide{{Title: "She said \"hi\"", Content: []string{"a & b"}}},
	}
	path := renderSample(t, content, "professional")

	title := readPart(t, path, "ppt/slides/slide1.xml")
	if !strings.Contains(title, "<a:t>Q&amp;A &lt;Live&gt;</a:t>") {
		t.Error("title not escaped")
	}
	body := readPart(t, path, "ppt/slides/slide2.xml")
	if !strings.Contains(body, "<a:t>• a &amp; b</a:t>") {
		t.Error("bullet not escaped")
	}
}

func TestRenderEmptyOutlineIsTitleOnly(t *testing.T) {
	content := &types.SlideContent{Title: "Just a Title"}
	path := renderSample(t, content, "professional")
	names := partNames(t, path)

	if !names["ppt/slides/slide1.xml"] {
		t.Error("missing title slide")
	}
	if names["ppt/slides/slide2.xml"] {
		t.Error("unexpected content slide")
	}
	slide := readPart(t, path, "ppt/slides/slide1.xml")
	if !strings.Contains(slide, "<a:t>1/1</a:t>") {
		t.Error("title-only deck should show footer 1/1")
	}
}

func TestRenderNilContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := NewRenderer().Render(nil, "professional", path); err == nil {
		t.Fatal("Render(nil) should fail")
	}
}
