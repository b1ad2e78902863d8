package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ijinpress/intake/pkg/sanitizer"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text untouched",
			input:    "International Journal of Nursing",
			expected: "International Journal of Nursing",
		},
		{
			name:     "ampersand",
			input:    "Smith & Sons",
			expected: "Smith &amp; Sons",
		},
		{
			name:     "angle brackets",
			input:    "<script>alert(1)</script>",
			expected: "&lt;script&gt;alert(1)&lt;/script&gt;",
		},
		{
			name:     "double quotes",
			input:    `say "hello"`,
			expected: "say &quot;hello&quot;",
		},
		{
			name:     "single quotes",
			input:    "it's fine",
			expected: "it&#039;s fine",
		},
		{
			name:     "newline becomes line break",
			input:    "Hello\nWorld",
			expected: "Hello<br>World",
		},
		{
			name:     "ampersand not double escaped",
			input:    "<&>",
			expected: "&lt;&amp;&gt;",
		},
		{
			name:     "pre-escaped entity escaped again",
			input:    "&amp;",
			expected: "&amp;amp;",
		},
		{
			name:     "mixed content",
			input:    "Dear \"Editor\",\nTom & Jerry's <draft>",
			expected: "Dear &quot;Editor&quot;,<br>Tom &amp; Jerry&#039;s &lt;draft&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.HTML(tt.input))
		})
	}
}

func TestHTML_NoDangerousCharactersRemain(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<a href="x" onclick='evil()'>click</a>`,
		"quotes ' and \" everywhere",
		"<<<>>>",
		strings.Repeat(`<"'&>`, 100),
	}

	for _, in := range inputs {
		out := sanitizer.HTML(in)
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, `"`)
		assert.NotContains(t, out, "'")
		// The only angle brackets left must belong to inserted <br> tags.
		stripped := strings.ReplaceAll(out, "<br>", "")
		assert.NotContains(t, stripped, "<")
		assert.NotContains(t, stripped, ">")
	}
}

func TestHTML_SecondPassOnlyRescapesAmpersands(t *testing.T) {
	t.Parallel()

	// Newline-free output of a first pass contains no raw <, >, " or ', so a
	// second pass can only touch the ampersands introduced by the entities.
	inputs := []string{"plain", "a<b", `x "y" z`, "it's", "<&>"}
	for _, in := range inputs {
		once := sanitizer.HTML(in)
		assert.Equal(t, strings.ReplaceAll(once, "&", "&amp;"), sanitizer.HTML(once))
	}
}

func TestHTMLOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", sanitizer.HTMLOr("", "-"))
	assert.Equal(t, "Journal Editor", sanitizer.HTMLOr("", "Journal Editor"))
	assert.Equal(t, "Dr. O&#039;Brien", sanitizer.HTMLOr("Dr. O'Brien", "-"))
}
