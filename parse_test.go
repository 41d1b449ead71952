package labelschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ls "github.com/tinywasm/labelschema"
)

const imageConfig = `
<View>
  <Header value="Pick one" size="3"/>
  <Image name="img" value="$image" zoom="true" zoomBy="1.5"/>
  <Choices name="choice" toName="img" choice="multiple">
    <Choice value="Cat"/>
    <Choice value="Dog" selected="false"/>
  </Choices>
  <Rating name="rate" toName="img" maxRating="10"/>
  <Style>.x { margin: 0 }</Style>
</View>`

func TestParse(t *testing.T) {
	root, err := ls.Parse(imageConfig)
	require.NoError(t, err)

	view, ok := root.Tag.(*ls.View)
	require.True(t, ok)
	assert.Equal(t, "", view.Display)
	require.Equal(t, 5, root.Len())

	header := root.Children[0].Tag.(*ls.Header)
	assert.Equal(t, "Pick one", header.Value)
	assert.Equal(t, 3, header.Size)

	img := root.Find("img").Tag.(*ls.Image)
	assert.Equal(t, "$image", img.Value)
	assert.Equal(t, ls.True, img.Zoom)
	assert.Equal(t, ls.Unset, img.Grid)
	assert.Equal(t, 1.5, img.ZoomBy)

	choices := root.Find("choice")
	assert.Equal(t, "multiple", choices.Tag.(*ls.Choices).Choice)
	require.Equal(t, 2, choices.Len())
	assert.Equal(t, ls.False, choices.Children[1].Tag.(*ls.Choice).Selected)

	assert.Equal(t, 10, root.Find("rate").Tag.(*ls.Rating).MaxRating)
	assert.Equal(t, ".x { margin: 0 }", root.Children[4].Text)
}

func TestParseRoundTrip(t *testing.T) {
	root, err := ls.Parse(imageConfig)
	require.NoError(t, err)

	s, err := ls.Render(root, true)
	require.NoError(t, err)

	again, err := ls.Parse(s)
	require.NoError(t, err)
	s2, err := ls.Render(again, true)
	require.NoError(t, err)
	assert.Equal(t, s, s2)
}

func TestParseMultiLineText(t *testing.T) {
	root, err := ls.Parse("<View><Style>\n  .a { color: red }\n  .b { color: blue }\n</Style></View>")
	require.NoError(t, err)
	assert.Equal(t, ".a { color: red }\n.b { color: blue }", root.Children[0].Text)

	s, err := ls.Render(root, true)
	require.NoError(t, err)
	assert.NotContains(t, s, "&#xA;")
	assert.Equal(t, "<View><Style>.a { color: red }\n.b { color: blue }</Style></View>", s)
}

func TestParseZeroIsUnset(t *testing.T) {
	root, err := ls.Parse(`<Header value="h" size="0"/>`)
	require.NoError(t, err)
	assert.Equal(t, 0, root.Tag.(*ls.Header).Size)

	s, err := ls.Render(root, true)
	require.NoError(t, err)
	assert.Equal(t, `<Header value="h" />`, s)
}

func TestParseCaseInsensitive(t *testing.T) {
	root, err := ls.Parse(`<Choices name="c" toname="img" SHOWINLINE="TRUE"/>`)
	require.NoError(t, err)
	c := root.Tag.(*ls.Choices)
	assert.Equal(t, "img", c.ToName)
	assert.Equal(t, ls.True, c.ShowInline)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"unknown tag", `<View><Bogus/></View>`, "unknown tag"},
		{"unknown attribute", `<Header value="a" colour="red"/>`, "unknown attribute"},
		{"bad integer", `<Header value="a" size="big"/>`, "validation error"},
		{"bad float", `<Image name="i" value="v" zoomBy="x"/>`, "validation error"},
		{"bad bool", `<Header value="a" underline="yes"/>`, "validation error"},
		{"malformed", `<View>`, "error parsing XML"},
		{"empty", ``, "error parsing XML"},
		{"two roots", `<View/><View/>`, "error parsing XML"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ls.Parse(tc.src)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
