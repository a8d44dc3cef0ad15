package web

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/codefionn/calcpad/internal/keypad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, props PageProps) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Page(props).Render(context.Background(), &buf))
	return buf.String()
}

func TestPageRendersKeypadLayout(t *testing.T) {
	html := renderPage(t, PageProps{Title: "calcpad", Token: "abc"})

	buttons := 0
	for _, row := range keypad.Layout {
		buttons += len(row)
	}
	assert.Equal(t, buttons, strings.Count(html, `class="key"`))
	assert.Equal(t, len(keypad.Layout), strings.Count(html, `class="row"`))
	assert.Contains(t, html, `data-kind="solve" data-key="enter">=</button>`)
	assert.Contains(t, html, `data-kind="clear" data-key="escape">C</button>`)
	assert.Contains(t, html, `data-token="abc"`)
	assert.Contains(t, html, `data-animations="on"`)
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
}

func TestPageEscapesProps(t *testing.T) {
	html := renderPage(t, PageProps{Title: "<x>", Token: `a"b`, DisableAnimations: true})

	assert.Contains(t, html, "<title>&lt;x&gt;</title>")
	assert.Contains(t, html, `data-token="a&#34;b"`)
	assert.Contains(t, html, `data-animations="off"`)
	assert.NotContains(t, html, "<x>")
}
