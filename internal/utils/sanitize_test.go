package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRichText(t *testing.T) {
	in := `<p>Waxed <strong>canvas</strong></p><script>alert(1)</script><a href="https://example.com" onclick="x()">details</a>`
	out := SanitizeRichText(in)

	assert.Contains(t, out, "<strong>canvas</strong>")
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, `rel="nofollow"`)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Need 500 units", StripHTML(" <b>Need</b> 500 units<script>x</script> "))
}
