package labelschema_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ls "github.com/tinywasm/labelschema"
)

func TestRegistry(t *testing.T) {
	tags := ls.Tags()
	require.NotEmpty(t, tags)
	assert.True(t, sort.SliceIsSorted(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name }))

	counts := map[ls.Category]int{}
	for _, info := range tags {
		counts[info.Category]++
		tag := info.New()
		assert.Equal(t, info.Name, tag.TagName())
		assert.Len(t, tag.Values(), len(tag.Schema()), info.Name)
		assert.Len(t, tag.Pointers(), len(tag.Schema()), info.Name)
	}
	assert.Equal(t, 8, counts[ls.CategoryObject])
	assert.Equal(t, 4, counts[ls.CategoryVisual])
	assert.GreaterOrEqual(t, counts[ls.CategoryControl], 28)

	info, ok := ls.Lookup("Choices")
	require.True(t, ok)
	assert.Equal(t, ls.CategoryControl, info.Category)
	_, ok = ls.Lookup("choices")
	assert.False(t, ok)

	assert.Equal(t, ls.CategoryObject, ls.CategoryOf(&ls.Image{}))
	assert.Equal(t, ls.CategoryVisual, ls.CategoryOf(&ls.View{}))
	assert.Equal(t, ls.CategoryVisual, ls.CategoryOf(&brokenTag{name: "Unregistered"}))
}

func TestRegisterCustomTag(t *testing.T) {
	ls.Register(ls.TagInfo{Name: "Snake", Category: ls.CategoryControl, New: func() ls.Tag { return &snakeTag{} }})

	root, err := ls.Parse(`<Snake to_name="img"/>`)
	require.NoError(t, err)
	assert.Equal(t, "img", root.Tag.(*snakeTag).ToName)
	assert.Equal(t, ls.CategoryControl, ls.CategoryOf(root.Tag))
}

func TestCategoryStrings(t *testing.T) {
	for _, c := range []ls.Category{ls.CategoryObject, ls.CategoryControl, ls.CategoryVisual} {
		got, ok := ls.CategoryFromString(c.String())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ls.CategoryFromString("layout")
	assert.False(t, ok)
}

func TestRequiredAttributes(t *testing.T) {
	for _, info := range ls.Tags() {
		if info.Name == "Snake" {
			continue
		}
		required := map[string]bool{}
		for _, a := range info.New().Schema() {
			if a.Required {
				required[a.Name] = true
			}
		}
		switch info.Category {
		case ls.CategoryObject:
			assert.True(t, required["name"] && required["value"], info.Name)
		case ls.CategoryControl:
			if required["name"] {
				assert.True(t, required["toName"], info.Name)
			}
		}
	}
}
