package exporter

import (
	"fmt"
	"html"
	"strings"

	"github.com/simeonrst/apphub/internal/favicon"
	"github.com/simeonrst/apphub/internal/model"
	"github.com/simeonrst/apphub/internal/view"
)

// ExportHTML renders the collection as a standalone dashboard page: one
// section per category in first-seen order, pinned apps first.
func ExportHTML(apps []model.App) string {
	projected := view.Project(apps, "", view.ModeAll)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n<title>App Hub</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("body{font-family:sans-serif;background:#0f1320;color:#e5e7eb;margin:2rem}\n")
	b.WriteString("h2{color:#9ca3af;font-size:0.9rem;text-transform:uppercase}\n")
	b.WriteString(".grid{display:flex;flex-wrap:wrap;gap:0.75rem;margin-bottom:1.5rem}\n")
	b.WriteString(".card{background:#14182a;border-radius:0.5rem;padding:0.75rem;width:14rem}\n")
	b.WriteString(".card img{width:24px;height:24px;vertical-align:middle;margin-right:0.5rem}\n")
	b.WriteString(".card a{color:#e5e7eb;text-decoration:none}\n")
	b.WriteString("hr{border:none;border-top:1px solid #2a3045;width:100%}\n")
	b.WriteString("</style>\n</head>\n<body>\n<h1>App Hub</h1>\n")

	for _, group := range projected.Groups {
		fmt.Fprintf(&b, "<h2>%s</h2>\n<div class=\"grid\">\n", html.EscapeString(group.Category))

		writeCards(&b, group.Pinned)
		if group.Divider {
			b.WriteString("<hr>\n")
		}
		writeCards(&b, group.Unpinned)

		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeCards(b *strings.Builder, apps []model.App) {
	for _, app := range apps {
		fmt.Fprintf(b,
			"<div class=\"card\"><a href=\"%s\"><img src=\"%s\" alt=\"\">%s</a></div>\n",
			html.EscapeString(app.URL),
			html.EscapeString(favicon.IconURL(app)),
			html.EscapeString(app.Name),
		)
	}
}
