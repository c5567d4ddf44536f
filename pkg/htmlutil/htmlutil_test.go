package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "  hello  ", expected: "hello"},
		{input: "\n\tmulti\n   line\t text ", expected: "multi line text"},
		{input: "zero\u200bwidth", expected: "zerowidth"},
		{input: "", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeText(test.input))
	}
}

func TestText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div>
			<span class="a">  first <b>bold</b>  </span>
			<span class="a"></span>
			<span class="a">
				second
			</span>
		</div>
	`))
	require.NoError(t, err)

	require.Equal(t, "first bold second", Text(doc.Find("span.a")))
	require.Equal(t, "", Text(doc.Find("span.missing")))
}
