package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"R&D \"lab\"", "R&D \"lab\""},
		{"<b>bold</b> move", "bold move"},
		{"<script>alert(1)</script>hello", "hello"},
		{`<img src=x onerror=alert(1)>`, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Text(tt.in), tt.in)
	}
}

type inner struct {
	Label string
}

type sample struct {
	Title   string
	Link    string `sanitize:"-"`
	Tags    []string
	Items   []inner
	Nested  *inner
	Count   int
	private string
}

func TestStruct(t *testing.T) {
	s := &sample{
		Title:   "<h1>Hi</h1>",
		Link:    "https://x.test/?a=<b>",
		Tags:    []string{"<i>go</i>", "web"},
		Items:   []inner{{Label: "<u>one</u>"}},
		Nested:  &inner{Label: "<em>two</em>"},
		Count:   3,
		private: "<b>kept</b>",
	}

	Struct(s)

	assert.Equal(t, "Hi", s.Title)
	assert.Equal(t, "https://x.test/?a=<b>", s.Link)
	assert.Equal(t, []string{"go", "web"}, s.Tags)
	assert.Equal(t, "one", s.Items[0].Label)
	assert.Equal(t, "two", s.Nested.Label)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "<b>kept</b>", s.private)

	assert.NotPanics(t, func() { Struct(nil) })
	assert.NotPanics(t, func() { Struct(sample{}) })
}
