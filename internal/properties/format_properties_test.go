package properties

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Properties
	}{
		{
			name:  "equals separator",
			input: "app.properties.name=Analysis App",
			want:  Properties{"app.properties.name": "Analysis App"},
		},
		{
			name:  "colon separator with spaces",
			input: "app.properties.name : Analysis App",
			want:  Properties{"app.properties.name": "Analysis App"},
		},
		{
			name:  "whitespace separator",
			input: "app.properties.name   Analysis App",
			want:  Properties{"app.properties.name": "Analysis App"},
		},
		{
			name:  "empty value",
			input: "app.properties.name=",
			want:  Properties{"app.properties.name": ""},
		},
		{
			name:  "key only",
			input: "app.properties.name",
			want:  Properties{"app.properties.name": ""},
		},
		{
			name:  "whitespace-only value",
			input: "app.properties.name=   ",
			want:  Properties{"app.properties.name": ""},
		},
		{
			name:  "value with separators",
			input: "url=http://host:8080/a=b",
			want:  Properties{"url": "http://host:8080/a=b"},
		},
		{
			name:  "comments and blank lines",
			input: "# comment\n! another\n\n   \nkey=value\n",
			want:  Properties{"key": "value"},
		},
		{
			name:  "continuation",
			input: "app.properties.name=Analysis \\\n    App",
			want:  Properties{"app.properties.name": "Analysis App"},
		},
		{
			name:  "escaped backslash is not a continuation",
			input: "path=C:\\\\\nnext=1",
			want:  Properties{"path": `C:\`, "next": "1"},
		},
		{
			name:  "continuation at end of input",
			input: "key=value\\",
			want:  Properties{"key": "value"},
		},
		{
			name:  "escapes",
			input: `key=a\tb\nc\u0041\=`,
			want:  Properties{"key": "a\tb\ncA="},
		},
		{
			name:  "escaped separator in key",
			input: `my\ key=value`,
			want:  Properties{"my key": "value"},
		},
		{
			name:  "later duplicate wins",
			input: "key=first\nkey=second",
			want:  Properties{"key": "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProperties(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProperties_MalformedEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "truncated unicode", input: "ok=1\nkey=\\u12"},
		{name: "invalid unicode", input: "ok=1\nkey=\\uZZZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProperties(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMalformedProperties)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}
