// ABOUTME: Structured-block builder converting rich markup to ordered blocks
// ABOUTME: Flattens nested containers into one document-ordered sequence

package blocks

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/media"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Containers that are flattened transparently into their children.
var transparentContainers = map[string]bool{
	"div":     true,
	"section": true,
	"article": true,
	"main":    true,
	"aside":   true,
	"body":    true,
	"html":    true,
	"header":  true,
	"footer":  true,
}

var codeLanguageRe = regexp.MustCompile(`(?:^|\s)(?:language|lang)-([\w#+-]+)`)

// Build walks the content tree depth-first and maps each semantic element
// to one block. It is a pure function of the input markup; malformed input
// degrades to however many blocks were built before the failure, never a
// panic.
func Build(html string) (out []domain.Block) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	walk(body.Children(), &out)
	return out
}

func walk(sel *goquery.Selection, out *[]domain.Block) {
	sel.Each(func(_ int, node *goquery.Selection) {
		name := goquery.NodeName(node)
		switch name {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if text := collapse(node.Text()); text != "" {
				*out = append(*out, domain.Block{
					Type:  domain.BlockHeading,
					Level: int(name[1] - '0'),
					Text:  text,
				})
			}
		case "p":
			appendParagraph(node, out)
		case "ul", "ol":
			var items []string
			node.Find("li").Each(func(_ int, li *goquery.Selection) {
				if text := collapse(li.Text()); text != "" {
					items = append(items, text)
				}
			})
			if len(items) > 0 {
				*out = append(*out, domain.Block{Type: domain.BlockList, Items: items})
			}
		case "img":
			appendImage(node, "", out)
		case "figure":
			caption := collapse(node.Find("figcaption").First().Text())
			img := node.Find("img").First()
			if img.Length() > 0 {
				appendImage(img, caption, out)
			} else if caption != "" {
				*out = append(*out, domain.Block{Type: domain.BlockParagraph, Text: caption})
			}
		case "pre":
			appendCode(node, out)
		case "blockquote":
			if text := collapse(node.Text()); text != "" {
				*out = append(*out, domain.Block{Type: domain.BlockQuote, Text: text})
			}
		case "table":
			if markup, err := goquery.OuterHtml(node); err == nil {
				*out = append(*out, domain.Block{Type: domain.BlockTable, HTML: strings.TrimSpace(markup)})
			}
		case "hr":
			*out = append(*out, domain.Block{Type: domain.BlockDivider})
		case "script", "style", "noscript", "template", "iframe":
			// Not content.
		default:
			if transparentContainers[name] {
				walk(node.Children(), out)
				return
			}
			appendParagraph(node, out)
		}
	})
}

func appendParagraph(node *goquery.Selection, out *[]domain.Block) {
	text := collapse(node.Text())
	if text == "" {
		return
	}
	block := domain.Block{Type: domain.BlockParagraph, Text: text}
	if inner, err := node.Html(); err == nil {
		inner = strings.TrimSpace(inner)
		// Only carry markup when it adds something over the plain text.
		if inner != "" && inner != text {
			block.HTML = inner
		}
	}
	*out = append(*out, block)
}

func appendImage(img *goquery.Selection, caption string, out *[]domain.Block) {
	src := media.ResolveImageSource(img)
	if src == "" {
		return
	}
	*out = append(*out, domain.Block{
		Type:    domain.BlockImage,
		Src:     src,
		Alt:     collapse(img.AttrOr("alt", "")),
		Caption: caption,
	})
}

func appendCode(pre *goquery.Selection, out *[]domain.Block) {
	code := pre.Find("code").First()
	language := ""
	if code.Length() > 0 {
		language = languageFromClass(code.AttrOr("class", ""))
	}
	if language == "" {
		language = languageFromClass(pre.AttrOr("class", ""))
	}

	text := pre.Text()
	if code.Length() > 0 {
		text = code.Text()
	}
	text = strings.Trim(text, "\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	*out = append(*out, domain.Block{Type: domain.BlockCode, Code: text, Language: language})
}

// languageFromClass extracts the language token from a language-*/lang-* class.
func languageFromClass(class string) string {
	if m := codeLanguageRe.FindStringSubmatch(class); m != nil {
		return m[1]
	}
	return ""
}

// collapse trims and folds all whitespace runs to single spaces.
func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
