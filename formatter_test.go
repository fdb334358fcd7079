package codewiki_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/codewiki"
	"github.com/stretchr/testify/assert"
)

func TestFormatOutline(t *testing.T) {
	t.Parallel()

	t.Run("formats title outline and body", func(t *testing.T) {
		t.Parallel()

		doc := &codewiki.RepoDocument{
			URL:   "https://codewiki.google/github.com/acme/widget",
			Title: "Widget",
			TOC: []codewiki.TocEntry{
				{Level: codewiki.HeadingSection, Text: "Intro"},
				{Level: codewiki.HeadingSubsection, Text: "Details"},
				{Level: codewiki.HeadingSection, Text: "Usage"},
			},
			Body: "Widget renders things.",
		}

		result := codewiki.FormatOutline(doc, codewiki.DefaultBodyLimit)

		expected := "# Widget\n\n" +
			"URL: https://codewiki.google/github.com/acme/widget\n\n" +
			"## Table of Contents\n\n" +
			"- Intro\n" +
			"  - Details\n" +
			"- Usage\n" +
			"\n## Documentation\n\n" +
			"Widget renders things."
		assert.Equal(t, expected, result)
	})

	t.Run("truncates body to limit characters", func(t *testing.T) {
		t.Parallel()

		doc := &codewiki.RepoDocument{Body: strings.Repeat("é", 6000)}

		result := codewiki.FormatOutline(doc, codewiki.DefaultBodyLimit)

		body := result[strings.Index(result, "## Documentation\n\n")+len("## Documentation\n\n"):]
		assert.Equal(t, strings.Repeat("é", 5000), body)
	})

	t.Run("shows whole body without limit", func(t *testing.T) {
		t.Parallel()

		doc := &codewiki.RepoDocument{Body: strings.Repeat("x", 6000)}

		result := codewiki.FormatOutline(doc, 0)

		assert.True(t, strings.HasSuffix(result, strings.Repeat("x", 6000)))
	})

	t.Run("formats empty document", func(t *testing.T) {
		t.Parallel()

		result := codewiki.FormatOutline(&codewiki.RepoDocument{}, codewiki.DefaultBodyLimit)

		assert.Equal(t, "# \n\nURL: \n\n## Table of Contents\n\n\n## Documentation\n\n", result)
	})
}
