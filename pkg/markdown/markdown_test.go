// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/longpd/folio/pkg/markdown"
)

func TestRender_HeadingAndEmphasis(t *testing.T) {
	input := "# Hello\n\nThis is **bold** and *italic*."
	expected := "<h1>Hello</h1>\n<p>This is <strong>bold</strong> and <em>italic</em>.</p>"

	assert.Equal(t, expected, markdown.Render(input))
}

func TestRender_Headings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"h1", "# Title", "<h1>Title</h1>"},
		{"h2", "## Section", "<h2>Section</h2>"},
		{"h3", "### Detail", "<h3>Detail</h3>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, markdown.Render(tt.input))
		})
	}
}

func TestRender_FencedCodeBlockEscapedOnce(t *testing.T) {
	input := "```go\nif a < b && c > d {\n}\n```"
	expected := "<pre><code class=\"language-go\">if a &lt; b &amp;&amp; c &gt; d {\n}</code></pre>"

	assert.Equal(t, expected, markdown.Render(input))
}

func TestRender_FencedCodeBlockWithoutLanguage(t *testing.T) {
	input := "```\nplain text\n```"
	expected := "<pre><code>plain text</code></pre>"

	assert.Equal(t, expected, markdown.Render(input))
}

// Markdown syntax inside a fenced block must survive untouched: the block
// is extracted before any other rule runs.
func TestRender_CodeBlockContentsNotTransformed(t *testing.T) {
	input := "```\n# not a heading\n**not bold**\n```"
	output := markdown.Render(input)

	assert.Contains(t, output, "# not a heading")
	assert.Contains(t, output, "**not bold**")
	assert.NotContains(t, output, "<h1>")
	assert.NotContains(t, output, "<strong>")
}

func TestRender_InlineCode(t *testing.T) {
	assert.Equal(t, "<p>run <code>go test</code> locally</p>", markdown.Render("run `go test` locally"))
	assert.Equal(t, "<p><code>a &amp; b</code></p>", markdown.Render("`a & b`"))
}

func TestRender_Lists(t *testing.T) {
	input := "- one\n- two\n\n1. first\n2. second"
	expected := "<ul><li>one</li><li>two</li></ul>\n<ol><li>first</li><li>second</li></ol>"

	assert.Equal(t, expected, markdown.Render(input))
}

// A change of marker mid-run closes the open list and starts the other kind.
func TestRender_MixedListTypesSplit(t *testing.T) {
	input := "- bullet\n1. number"
	expected := "<ul><li>bullet</li></ul>\n<ol><li>number</li></ol>"

	assert.Equal(t, expected, markdown.Render(input))
}

func TestRender_LinksAndImages(t *testing.T) {
	link := markdown.Render("[Folio](https://folio.dev)")
	assert.Equal(t, `<p><a href="https://folio.dev" target="_blank" rel="noopener noreferrer">Folio</a></p>`, link)

	image := markdown.Render("![cover](https://cdn.folio.dev/cover.png)")
	assert.Equal(t, `<p><img src="https://cdn.folio.dev/cover.png" alt="cover" loading="lazy"></p>`, image)
}

func TestRender_BlockquoteAndRule(t *testing.T) {
	assert.Equal(t, "<blockquote>quoted words</blockquote>", markdown.Render("> quoted words"))
	assert.Equal(t, "<hr>", markdown.Render("---"))
	assert.Equal(t, "<hr>", markdown.Render("-----"))
}

func TestRender_ParagraphLineBreaks(t *testing.T) {
	input := "line one\nline two\n\nsecond paragraph"
	expected := "<p>line one<br>line two</p>\n<p>second paragraph</p>"

	assert.Equal(t, expected, markdown.Render(input))
}

func TestRender_BoldItalicLongestMatchFirst(t *testing.T) {
	assert.Equal(t, "<p><strong><em>both</em></strong></p>", markdown.Render("***both***"))
}

// Constructs outside the dialect pass through as literal paragraph text.
func TestRender_UnknownSyntaxPassesThrough(t *testing.T) {
	assert.Equal(t, "<p>~~strike~~</p>", markdown.Render("~~strike~~"))
}

func TestRender_EmptyInput(t *testing.T) {
	assert.Equal(t, "", markdown.Render(""))
}

// The renderer backs both the public view and the admin preview; the two
// must be byte-identical for the same source.
func TestRender_Deterministic(t *testing.T) {
	input := "# Post\n\n```go\nfmt.Println(\"hi\")\n```\n\n- a\n- b\n\n> note\n\n[x](https://x.dev)"

	first := markdown.Render(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, markdown.Render(input))
	}
}

func TestRender_MultipleCodeBlocksKeepOrder(t *testing.T) {
	input := "```\nfirst\n```\n\nmiddle\n\n```\nsecond\n```"
	output := markdown.Render(input)

	firstIdx := indexOf(output, "first")
	middleIdx := indexOf(output, "middle")
	secondIdx := indexOf(output, "second")

	assert.True(t, firstIdx < middleIdx && middleIdx < secondIdx)
	assert.NotContains(t, output, "CODEBLOCK")
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
