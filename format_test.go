package labelschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ls "github.com/tinywasm/labelschema"
)

func TestCleanLines(t *testing.T) {
	assert.Equal(t, "a\nb", ls.CleanLines("  a  \n\n\t\n b\n"))
	assert.Equal(t, "", ls.CleanLines("\n \n"))
}

func TestFormat(t *testing.T) {
	src := `<View style="x"><Header value="Hi"/><!-- note --><Text name="t" value="$text"></Text><Style> .a { color: red } </Style></View>`

	t.Run("Default indent", func(t *testing.T) {
		got, err := ls.Format(src, 0)
		require.NoError(t, err)
		want := "<View style=\"x\">\n" +
			"    <Header value=\"Hi\"/>\n" +
			"    <!-- note -->\n" +
			"    <Text name=\"t\" value=\"$text\"/>\n" +
			"    <Style>.a { color: red }</Style>\n" +
			"</View>"
		assert.Equal(t, want, got)
	})

	t.Run("Custom indent", func(t *testing.T) {
		got, err := ls.Format(`<View><View><Header value="a"/></View></View>`, 2)
		require.NoError(t, err)
		assert.Equal(t, "<View>\n  <View>\n    <Header value=\"a\"/>\n  </View>\n</View>", got)
	})

	t.Run("Escapes survive a round trip", func(t *testing.T) {
		got, err := ls.Format(`<Header value="a &amp; b"/>`, 4)
		require.NoError(t, err)
		assert.Equal(t, `<Header value="a &amp; b"/>`, got)
	})

	t.Run("Multi-line text keeps one line per row", func(t *testing.T) {
		got, err := ls.Format("<View><Style>\n  .a { color: red }\n\n  .b { color: blue }\n</Style></View>", 4)
		require.NoError(t, err)
		want := "<View>\n" +
			"    <Style>\n" +
			"        .a { color: red }\n" +
			"        .b { color: blue }\n" +
			"    </Style>\n" +
			"</View>"
		assert.Equal(t, want, got)
		assert.NotContains(t, got, "&#xA;")
	})

	t.Run("Text keeps quotes and escapes markup", func(t *testing.T) {
		got, err := ls.Format(`<Style>a &lt; b "c"</Style>`, 4)
		require.NoError(t, err)
		assert.Equal(t, `<Style>a &lt; b "c"</Style>`, got)
	})

	t.Run("Top-level comments are kept", func(t *testing.T) {
		got, err := ls.Format(`<!-- head --><View><Header value="a"/></View><!-- tail -->`, 2)
		require.NoError(t, err)
		assert.Equal(t, "<!-- head -->\n<View>\n  <Header value=\"a\"/>\n</View>\n<!-- tail -->", got)
	})

	t.Run("Namespaces are rejected", func(t *testing.T) {
		for _, ns := range []string{
			`<x:View xmlns:x="urn:x"/>`,
			`<View xmlns="urn:x"/>`,
			`<View x:a="1"/>`,
		} {
			_, err := ls.Format(ns, 4)
			assert.ErrorContains(t, err, "error parsing XML", ns)
		}
	})

	t.Run("Malformed input", func(t *testing.T) {
		for _, bad := range []string{"<View>", "", "<View/><View/>", "<View></Header>"} {
			_, err := ls.Format(bad, 4)
			assert.ErrorContains(t, err, "error parsing XML", bad)
		}
	})
}
