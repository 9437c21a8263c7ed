package assemble

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML flattens an upstream narrative field to plain text: tags are
// dropped, script and style bodies are skipped, and whitespace is
// collapsed. Input without markup is returned with whitespace normalized
// only.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return collapseSpace(s)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return collapseSpace(sb.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) {
				skipDepth++
			} else if blockTag(string(name)) {
				sb.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) && skipDepth > 0 {
				skipDepth--
			} else if blockTag(string(name)) {
				sb.WriteByte(' ')
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
			}
		}
	}
}

func skippedTag(name string) bool {
	return name == "script" || name == "style"
}

func blockTag(name string) bool {
	switch name {
	case "p", "div", "br", "li", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
		return true
	}
	return false
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
