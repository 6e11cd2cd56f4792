package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/simeonrst/apphub/internal/model"
)

// ParseHTMLBookmarks parses Netscape bookmark HTML into apps. The flattened
// folder name a link sits in becomes its category; links outside any folder
// land in "General". The returned category list preserves first-seen order.
func ParseHTMLBookmarks(r io.Reader) ([]model.App, []string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, err
	}

	var apps []model.App
	var categories []string
	seen := map[string]bool{}

	// Track the current folder stack; the innermost folder names the category
	var folderStack []string
	var pendingFolder string
	havePending := false

	addCategory := func(name string) {
		if !seen[name] {
			seen[name] = true
			categories = append(categories, name)
		}
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				name := getTextContent(n)
				if name != "" {
					// Pushed onto the stack when the folder's DL follows
					pendingFolder = name
					havePending = true
				}
				return

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					return
				}

				name := getTextContent(n)
				if name == "" {
					name = href
				}

				category := model.DefaultCategory
				if len(folderStack) > 0 {
					category = folderStack[len(folderStack)-1]
				}
				addCategory(category)

				apps = append(apps, model.NewApp(model.NewAppParams{
					Name:     name,
					URL:      href,
					Category: category,
				}))
				return

			case "dl":
				pushed := false
				if havePending {
					folderStack = append(folderStack, pendingFolder)
					havePending = false
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return apps, categories, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
