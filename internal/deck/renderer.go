package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

// Layout boxes in EMU on the 12192000x6858000 canvas.
var (
	titleBox    = box{914400, 2057400, 10363200, 1143000}
	titleBarBox = box{4953000, 3314700, 2286000, 45720}
	subtitleBox = box{914400, 3543300, 10363200, 685800}

	headingBox   = box{685800, 365760, 10820400, 914400}
	headingRule  = box{685800, 1371600, 3657600, 45720}
	bodyBox      = box{685800, 1600200, 10820400, 4526280}
	deckStripBox = box{685800, 6400800, 5486400, 365760}
	footerBox    = box{10515600, 6400800, 1143000, 365760}
)

const deckStripMaxChars = 48

// Renderer writes themed .pptx decks from generated slide content.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the deck for content to outputPath, styled by the theme with
// the given id. An unknown theme id silently falls back to the default theme.
// The deck is one title slide followed by one slide per content entry.
func (r *Renderer) Render(content *types.SlideContent, themeID, outputPath string) error {
	if content == nil {
		return fmt.Errorf("no slide content to render")
	}
	theme := Lookup(themeID)
	total := len(content.Slides) + 1

	slides := make([]string, 0, total)
	slides = append(slides, titleSlideXML(theme, content.Title, total))
	for i, s := range content.Slides {
		slides = append(slides, contentSlideXML(theme, content.Title, s, i+2, total))
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create presentation file: %w", err)
	}
	if err := writePackage(f, theme, content.Title, slides); err != nil {
		f.Close()
		os.Remove(outputPath)
		return fmt.Errorf("write presentation: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close presentation file: %w", err)
	}
	return nil
}

func titleSlideXML(t Theme, title string, total int) string {
	shapes := []string{
		textShape(2, "Title", titleBox, "ctr",
			para("ctr", run(title, t.Primary, 4000, true))),
		rectShape(3, "Accent Bar", titleBarBox, t.Accent),
		textShape(4, "Subtitle", subtitleBox, "",
			para("ctr", run("Generated from audio transcript", t.Secondary, 2000, false))),
		textShape(5, "Page Number", footerBox, "",
			para("r", run(fmt.Sprintf("1/%d", total), t.LightText, 1200, false))),
	}
	return slideXML(t, shapes)
}

func contentSlideXML(t Theme, deckTitle string, s types.Slide, index, total int) string {
	paras := make([]string, 0, len(s.Content))
	for _, point := range s.Content {
		paras = append(paras, para("l", run("• "+point, t.Text, 1800, false)))
	}
	if len(paras) == 0 {
		paras = append(paras, para("l", run("", t.Text, 1800, false)))
	}

	shapes := []string{
		textShape(2, "Title", headingBox, "ctr",
			para("l", run(s.Title, t.Primary, 3200, true))),
		rectShape(3, "Accent Line", headingRule, t.Accent),
		textShape(4, "Body", bodyBox, "", paras...),
		textShape(5, "Deck Title", deckStripBox, "",
			para("l", run(truncateTitle(deckTitle, deckStripMaxChars), t.LightText, 1200, false))),
		textShape(6, "Page Number", footerBox, "",
			para("r", run(fmt.Sprintf("%d/%d", index, total), t.LightText, 1200, false))),
	}
	return slideXML(t, shapes)
}

func slideXML(t Theme, shapes []string) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + nsAttrs + `>`)
	fmt.Fprintf(&b, `<p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, t.Background)
	b.WriteString(`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	for _, s := range shapes {
		b.WriteString(s)
	}
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}

type box struct {
	x, y, cx, cy int64
}

func textShape(id int, name string, b box, anchor string, paras ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, escape(name))
	fmt.Fprintf(&sb, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`, b.x, b.y, b.cx, b.cy)
	if anchor != "" {
		fmt.Fprintf(&sb, `<p:txBody><a:bodyPr wrap="square" anchor="%s"><a:normAutofit/></a:bodyPr><a:lstStyle/>`, anchor)
	} else {
		sb.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	}
	for _, p := range paras {
		sb.WriteString(p)
	}
	sb.WriteString(`</p:txBody></p:sp>`)
	return sb.String()
}

func rectShape(id int, name string, b box, fill string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`+
		`<a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:ln><a:noFill/></a:ln></p:spPr>`+
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr/></a:p></p:txBody></p:sp>`,
		id, escape(name), b.x, b.y, b.cx, b.cy, fill)
}

func para(align string, runs ...string) string {
	var sb strings.Builder
	sb.WriteString(`<a:p>`)
	if align != "" {
		fmt.Fprintf(&sb, `<a:pPr algn="%s"/>`, align)
	}
	for _, r := range runs {
		sb.WriteString(r)
	}
	sb.WriteString(`</a:p>`)
	return sb.String()
}

func run(text, color string, size int, bold bool) string {
	attrs := ""
	if bold {
		attrs = ` b="1"`
	}
	return fmt.Sprintf(`<a:r><a:rPr lang="en-US" sz="%d"%s><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r>`,
		size, attrs, color, escape(text))
}

func truncateTitle(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
