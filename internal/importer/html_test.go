package importer_test

import (
	"strings"
	"testing"

	"github.com/simeonrst/apphub/internal/importer"
)

func TestParseHTMLBookmarks_FoldersBecomeCategories(t *testing.T) {
	input := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
	<DT><H3>Development</H3>
	<DL><p>
		<DT><A HREF="https://github.com">GitHub</A>
		<DT><A HREF="https://stackoverflow.com">Stack Overflow</A>
	</DL><p>
	<DT><A HREF="https://news.ycombinator.com">Hacker News</A>
</DL><p>`

	apps, categories, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if len(apps) != 3 {
		t.Fatalf("expected 3 apps, got %d", len(apps))
	}

	if apps[0].Name != "GitHub" || apps[0].Category != "Development" {
		t.Errorf("unexpected first app: %+v", apps[0])
	}
	if apps[2].Name != "Hacker News" || apps[2].Category != "General" {
		t.Errorf("root-level link should land in General: %+v", apps[2])
	}

	wantCategories := []string{"Development", "General"}
	if len(categories) != len(wantCategories) {
		t.Fatalf("expected categories %v, got %v", wantCategories, categories)
	}
	for i := range wantCategories {
		if categories[i] != wantCategories[i] {
			t.Fatalf("expected categories %v, got %v", wantCategories, categories)
		}
	}
}

func TestParseHTMLBookmarks_NestedFoldersUseInnermost(t *testing.T) {
	input := `<DL><p>
	<DT><H3>Outer</H3>
	<DL><p>
		<DT><H3>Inner</H3>
		<DL><p>
			<DT><A HREF="https://deep.example.com">Deep</A>
		</DL><p>
	</DL><p>
</DL><p>`

	apps, _, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 app, got %d", len(apps))
	}
	if apps[0].Category != "Inner" {
		t.Errorf("expected innermost folder as category, got %q", apps[0].Category)
	}
}

func TestParseHTMLBookmarks_SkipsLinksWithoutHref(t *testing.T) {
	input := `<DL><p><DT><A>No link</A><DT><A HREF="https://ok.example.com">OK</A></DL><p>`

	apps, _, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(apps) != 1 || apps[0].Name != "OK" {
		t.Errorf("expected only the link with an href, got %+v", apps)
	}
}

func TestParseHTMLBookmarks_FallsBackToURLAsName(t *testing.T) {
	input := `<DL><p><DT><A HREF="https://untitled.example.com"></A></DL><p>`

	apps, _, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(apps) != 1 || apps[0].Name != "https://untitled.example.com" {
		t.Errorf("expected URL used as name, got %+v", apps)
	}
}
