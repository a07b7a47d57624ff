package export

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontSize  = 12
	titleSize = 16
)

// WriteTranscriptDocx renders a transcript as a Word document at outputPath.
// The text is split into paragraphs on newlines; Whisper output is usually a
// single block, which becomes one flowing paragraph under the title.
func WriteTranscriptDocx(title, transcript, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, block := range strings.Split(transcript, "\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		addRun(doc.AddParagraph(""), block, false, fontSize)
	}

	return doc.SaveTo(outputPath)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
