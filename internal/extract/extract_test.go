package extract

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestImageURLs_DeduplicatesKeepingFirstPosition(t *testing.T) {
	got := ImageURLs("see http://a.test/x.png and http://a.test/x.png again")

	want := []string{"http://a.test/x.png"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestImageURLs_OrderFollowsFirstOccurrence(t *testing.T) {
	html := `
	<img src="https://cdn.test/b.gif">
	<img src="https://cdn.test/a.jpg">
	<img src="https://cdn.test/b.gif">
	<img src="https://cdn.test/c.webp">
	<img src="https://cdn.test/a.jpg">`

	got := ImageURLs(html)
	want := []string{
		"https://cdn.test/b.gif",
		"https://cdn.test/a.jpg",
		"https://cdn.test/c.webp",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestImageURLs_RecognisedExtensions(t *testing.T) {
	for _, ext := range []string{"jpg", "gif", "png", "webp", "JPG", "GIF", "PNG", "WEBP"} {
		u := "http://a.test/img." + ext
		got := ImageURLs(`"` + u + `"`)
		if len(got) != 1 || got[0] != u {
			t.Errorf("extension %s: got %#v, want [%s]", ext, got, u)
		}
	}
}

func TestImageURLs_RejectsMixedCaseExtension(t *testing.T) {
	for _, in := range []string{`"http://a.test/y.Jpg"`, `"http://a.test/y.Png"`, `"http://a.test/y.WebP"`} {
		if got := ImageURLs(in); len(got) != 0 {
			t.Errorf("%s: expected no match, got %#v", in, got)
		}
	}
}

func TestImageURLs_CaseSensitiveEquality(t *testing.T) {
	got := ImageURLs(`"http://a.test/y.JPG" "http://a.test/y.jpg"`)

	want := []string{"http://a.test/y.JPG", "http://a.test/y.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestImageURLs_IgnoresOtherSchemesAndRelativeLinks(t *testing.T) {
	html := `<img src="/local.png"><img src="ftp://a.test/x.png"><img src="data:image/png;base64,AAA">`
	if got := ImageURLs(html); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestImageURLs_GreedyRunSpansWhitespace(t *testing.T) {
	// The run accepts whitespace, so trailing text ending in an extension is swallowed.
	got := ImageURLs("http://a.test/one.png and then two.png")

	want := []string{"http://a.test/one.png and then two.png"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestImageURLs_ColonEndsRun(t *testing.T) {
	got := ImageURLs("http://a.test/one.png http://a.test/two.png")

	want := []string{"http://a.test/one.png", "http://a.test/two.png"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestImageURLs_QueryStringStopsRun(t *testing.T) {
	got := ImageURLs(`<img src="https://a.test/p/photo-1.jpg?w=200">`)

	want := []string{"https://a.test/p/photo-1.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestImageURLs_Empty(t *testing.T) {
	if got := ImageURLs(""); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}

func BenchmarkImageURLs(b *testing.B) {
	var page strings.Builder
	page.WriteString("<html><body>\n")
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&page, `<p>item %d</p><img src="https://cdn.test/img/%d.png" alt="x">`+"\n", i, i%250)
	}
	page.WriteString("</body></html>\n")
	text := page.String()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if got := ImageURLs(text); len(got) != 250 {
			b.Fatalf("expected 250 urls, got %d", len(got))
		}
	}
}
