package htmljsx

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

var (
	minifier *minify.M
	once     sync.Once
)

// getMinifier returns the shared HTML minifier. Comments, quotes, end tags
// and default attribute values are kept since each of them shows up in the
// converted output.
func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.Add("text/html", &html.Minifier{
			KeepComments:        true,
			KeepDefaultAttrVals: true,
			KeepDocumentTags:    true,
			KeepEndTags:         true,
			KeepQuotes:          true,
		})
	})
	return minifier
}

// minifyHTML collapses insignificant whitespace. Content the minifier
// rejects is returned unchanged.
func minifyHTML(htmlContent string) string {
	minified, err := getMinifier().String("text/html", htmlContent)
	if err != nil {
		return htmlContent
	}
	return minified
}
