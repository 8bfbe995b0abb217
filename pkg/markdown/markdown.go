// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package markdown converts a constrained Markdown dialect into an HTML
fragment for blog content.

The same function serves the public blog view and the admin live preview, so
it must be a pure function: identical input yields byte-identical output on
every call, with no environment-dependent behavior.

Supported syntax:

  - Fenced code blocks (triple backtick, optional language tag)
  - Inline code spans
  - Headings (#, ##, ###), blockquotes (>), horizontal rules (---)
  - Emphasis (***bold italic***, **bold**, *italic*)
  - Images ![alt](url) and links [text](url)
  - Unordered (-, *) and ordered (1.) lists
  - Paragraphs with <br> for single newlines

Anything the dialect does not recognize is passed through as literal text
inside a paragraph. Render never fails on malformed input.
*/
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	fencedBlockRegex = regexp.MustCompile("(?s)```([a-zA-Z0-9+-]*)\n?(.*?)```")
	inlineCodeRegex  = regexp.MustCompile("`([^`\n]+)`")

	heading3Regex = regexp.MustCompile(`(?m)^### (.*)$`)
	heading2Regex = regexp.MustCompile(`(?m)^## (.*)$`)
	heading1Regex = regexp.MustCompile(`(?m)^# (.*)$`)

	blockquoteRegex = regexp.MustCompile(`(?m)^> ?(.*)$`)
	horizontalRegex = regexp.MustCompile(`(?m)^-{3,}[ \t]*$`)

	boldItalicRegex = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldRegex       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRegex     = regexp.MustCompile(`\*([^*\n]+)\*`)

	imageRegex = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkRegex  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	unorderedItemRegex = regexp.MustCompile(`^[-*] (.*)$`)
	orderedItemRegex   = regexp.MustCompile(`^\d+\. (.*)$`)

	emptyParagraphRegex = regexp.MustCompile(`<p>\s*</p>`)
)

// codePlaceholder formats the temporary token that protects an extracted
// fenced block from every later transformation rule.
func codePlaceholder(index int) string {
	return fmt.Sprintf("%%%%CODEBLOCK_%d%%%%", index)
}

// Render converts Markdown source into an HTML fragment.
//
// # Rule Ordering
//
// The transformation order is load-bearing: fenced blocks are extracted
// first so that no subsequent rule can rewrite their contents, and they are
// restored last with their exact escaped HTML. Emphasis applies longest
// match first so that **bold** is never misparsed as two italics.
func Render(input string) string {
	if input == "" {
		return ""
	}

	text := strings.ReplaceAll(input, "\r\n", "\n")

	// 1. Extract fenced code blocks behind numbered placeholders.
	var codeBlocks []string
	text = fencedBlockRegex.ReplaceAllStringFunc(text, func(match string) string {
		parts := fencedBlockRegex.FindStringSubmatch(match)
		language, body := parts[1], parts[2]

		escaped := escapeHTML(strings.TrimRight(body, "\n"))
		var block string
		if language != "" {
			block = `<pre><code class="language-` + language + `">` + escaped + "</code></pre>"
		} else {
			block = "<pre><code>" + escaped + "</code></pre>"
		}

		codeBlocks = append(codeBlocks, block)
		return codePlaceholder(len(codeBlocks) - 1)
	})

	// 2. Inline code spans. Applied after block extraction so code inside a
	// fence is never double-processed.
	text = inlineCodeRegex.ReplaceAllStringFunc(text, func(match string) string {
		inner := inlineCodeRegex.FindStringSubmatch(match)[1]
		return "<code>" + escapeHTML(inner) + "</code>"
	})

	// 3. Headings, longest prefix first.
	text = heading3Regex.ReplaceAllString(text, "<h3>$1</h3>")
	text = heading2Regex.ReplaceAllString(text, "<h2>$1</h2>")
	text = heading1Regex.ReplaceAllString(text, "<h1>$1</h1>")

	// 4. Blockquotes.
	text = blockquoteRegex.ReplaceAllString(text, "<blockquote>$1</blockquote>")

	// 5. Horizontal rules (three or more dashes on their own line).
	text = horizontalRegex.ReplaceAllString(text, "<hr>")

	// 6. Emphasis, longest match first.
	text = boldItalicRegex.ReplaceAllString(text, "<strong><em>$1</em></strong>")
	text = boldRegex.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicRegex.ReplaceAllString(text, "<em>$1</em>")

	// 7. Images before links, otherwise ![alt](url) loses its leading bang.
	text = imageRegex.ReplaceAllString(text, `<img src="$2" alt="$1" loading="lazy">`)

	// 8. Links open in a new tab with a safe rel.
	text = linkRegex.ReplaceAllString(text, `<a href="$2" target="_blank" rel="noopener noreferrer">$1</a>`)

	// 9. Group consecutive list items into a single wrapper.
	text = groupLists(text)

	// 10. Paragraph wrapping.
	text = wrapParagraphs(text)

	// 11. Restore fenced blocks with their exact escaped HTML.
	for i, block := range codeBlocks {
		text = strings.Replace(text, codePlaceholder(i), block, 1)
	}

	// 12. Drop paragraphs that ended up empty.
	text = emptyParagraphRegex.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}

// escapeHTML escapes exactly &, < and > — ampersand first so that entities
// produced by the other two replacements are not double-escaped.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// groupLists merges consecutive list-item lines into one <ul> or <ol> block.
//
// It is a single forward pass carrying the currently open list type. A
// change of list type, a blank line, or any non-list line closes the open
// wrapper before processing continues.
func groupLists(text string) string {
	lines := strings.Split(text, "\n")

	var out []string
	openType := "" // "", "ul" or "ol"
	var items []string

	flush := func() {
		if openType == "" {
			return
		}
		out = append(out, "<"+openType+">"+strings.Join(items, "")+"</"+openType+">")
		openType = ""
		items = nil
	}

	for _, line := range lines {
		var listType, content string

		if m := unorderedItemRegex.FindStringSubmatch(line); m != nil {
			listType, content = "ul", m[1]
		} else if m := orderedItemRegex.FindStringSubmatch(line); m != nil {
			listType, content = "ol", m[1]
		}

		if listType == "" {
			flush()
			out = append(out, line)
			continue
		}

		if openType != "" && openType != listType {
			flush()
		}
		openType = listType
		items = append(items, "<li>"+content+"</li>")
	}
	flush()

	return strings.Join(out, "\n")
}

// blockLevelPrefixes identifies lines already produced by an earlier rule
// that must not be wrapped in a paragraph.
var blockLevelPrefixes = []string{
	"<h1>", "<h2>", "<h3>", "<blockquote>", "<hr>", "<ul>", "<ol>", "<pre>", "%%CODEBLOCK_",
}

// wrapParagraphs splits the text on blank lines and wraps each plain block
// in <p>, converting single newlines within the block to <br>.
func wrapParagraphs(text string) string {
	blocks := strings.Split(text, "\n\n")

	for i, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			blocks[i] = ""
			continue
		}

		if isBlockLevel(trimmed) {
			blocks[i] = trimmed
			continue
		}

		blocks[i] = "<p>" + strings.ReplaceAll(trimmed, "\n", "<br>") + "</p>"
	}

	return strings.Join(blocks, "\n")
}

// isBlockLevel reports whether a block already starts with a block-level tag.
func isBlockLevel(block string) bool {
	for _, prefix := range blockLevelPrefixes {
		if strings.HasPrefix(block, prefix) {
			return true
		}
	}
	return false
}
