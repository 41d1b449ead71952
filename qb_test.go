package labelschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ls "github.com/tinywasm/labelschema"
)

func names(nodes []*ls.Node) []string {
	var out []string
	for _, n := range nodes {
		switch t := n.Tag.(type) {
		case *ls.Choice:
			out = append(out, t.Value)
		case *ls.Rating:
			out = append(out, t.Name)
		default:
			out = append(out, t.TagName())
		}
	}
	return out
}

func queryTree() *ls.Node {
	return ls.El(&ls.View{},
		ls.El(&ls.Image{Name: "img", Value: "$image"}),
		ls.El(&ls.Choices{Name: "animal", ToName: "img"},
			ls.El(&ls.Choice{Value: "Cat", Hotkey: "c"}),
			ls.El(&ls.Choice{Value: "Dog", Selected: ls.True}),
			ls.El(&ls.Choice{Value: "Cow"}),
		),
		ls.El(&ls.Rating{Name: "quality", ToName: "img", MaxRating: 10}),
		ls.El(&ls.Rating{Name: "speed", ToName: "img"}),
	)
}

func TestQB(t *testing.T) {
	root := queryTree()

	t.Run("Tag name filter", func(t *testing.T) {
		assert.Equal(t, []string{"Cat", "Dog", "Cow"}, names(root.Query("Choice").ReadAll()))
		assert.Len(t, root.Query("").ReadAll(), 8)
		assert.Empty(t, root.Query("Audio").ReadAll())
	})

	t.Run("Eq and Neq", func(t *testing.T) {
		got := root.Query("Choice").Where(ls.Eq("selected", true)).ReadAll()
		assert.Equal(t, []string{"Dog"}, names(got))

		got = root.Query("Choice").Where(ls.Neq("value", "Dog")).ReadAll()
		assert.Equal(t, []string{"Cat", "Cow"}, names(got))
	})

	t.Run("Defaults take part in matching", func(t *testing.T) {
		got := root.Query("Rating").Where(ls.Eq("maxRating", 5)).ReadAll()
		assert.Equal(t, []string{"speed"}, names(got))

		got = root.Query("Rating").Where(ls.Gt("maxRating", 5)).ReadAll()
		assert.Equal(t, []string{"quality"}, names(got))

		got = root.Query("Rating").Where(ls.Lte("maxRating", 10), ls.Gte("maxRating", 5)).ReadAll()
		assert.Len(t, got, 2)
		assert.Empty(t, root.Query("Rating").Where(ls.Lt("maxRating", 5)).ReadAll())
	})

	t.Run("Like and Or", func(t *testing.T) {
		got := root.Query("Choice").Where(ls.Like("value", "C%")).ReadAll()
		assert.Equal(t, []string{"Cat", "Cow"}, names(got))

		got = root.Query("Choice").Where(ls.Like("value", "_o_")).ReadAll()
		assert.Equal(t, []string{"Dog", "Cow"}, names(got))

		got = root.Query("Choice").Where(ls.Eq("hotkey", "c"), ls.Or(ls.Eq("value", "Cow"))).ReadAll()
		assert.Equal(t, []string{"Cat", "Cow"}, names(got))
	})

	t.Run("Like matches multi-byte runes", func(t *testing.T) {
		tree := ls.El(&ls.Choices{Name: "animal", ToName: "img"},
			ls.El(&ls.Choice{Value: "Cöw"}),
			ls.El(&ls.Choice{Value: "Cow"}),
			ls.El(&ls.Choice{Value: "Coow"}),
		)
		got := tree.Query("Choice").Where(ls.Like("value", "C_w")).ReadAll()
		assert.Equal(t, []string{"Cöw", "Cow"}, names(got))

		got = tree.Query("Choice").Where(ls.Like("value", "%ö%")).ReadAll()
		assert.Equal(t, []string{"Cöw"}, names(got))
	})

	t.Run("Missing attribute only matches Neq", func(t *testing.T) {
		assert.Empty(t, root.Query("").Where(ls.Eq("maxRating", 5), ls.Eq("value", "Cat")).ReadAll())
		assert.Len(t, root.Query("View").Where(ls.Neq("value", "x")).ReadAll(), 1)
	})

	t.Run("Order, limit and offset", func(t *testing.T) {
		got := root.Query("Choice").OrderBy("value", "DESC").ReadAll()
		assert.Equal(t, []string{"Dog", "Cow", "Cat"}, names(got))

		got = root.Query("Choice").OrderBy("value", "ASC").Offset(1).Limit(1).ReadAll()
		assert.Equal(t, []string{"Cow"}, names(got))

		got = root.Query("Choice").OrderBy("value", "desc").Limit(1).ReadAll()
		assert.Equal(t, []string{"Dog"}, names(got))

		assert.Empty(t, root.Query("Choice").Offset(5).ReadAll())
	})

	t.Run("ReadOne", func(t *testing.T) {
		n, err := root.Query("Rating").Where(ls.Eq("name", "speed")).ReadOne()
		require.NoError(t, err)
		assert.Equal(t, "speed", n.Tag.(*ls.Rating).Name)

		_, err = root.Query("Rating").Where(ls.Eq("name", "nope")).ReadOne()
		assert.ErrorIs(t, err, ls.ErrNotFound)
	})

	t.Run("Build", func(t *testing.T) {
		q := root.Query("Choice").Where(ls.Eq("value", "Cat")).OrderBy("value", "ASC").Limit(2).Build()
		assert.Equal(t, "Choice", q.TagName)
		require.Len(t, q.Conditions, 1)
		assert.Equal(t, "value", q.Conditions[0].Attr())
		assert.Equal(t, "=", q.Conditions[0].Operator())
		assert.Equal(t, "Cat", q.Conditions[0].Value())
		assert.Equal(t, "AND", q.Conditions[0].Logic())
		assert.Equal(t, "OR", ls.Or(ls.Eq("a", 1)).Logic())
		require.Len(t, q.OrderBy, 1)
		assert.Equal(t, "value", q.OrderBy[0].Attr())
		assert.Equal(t, "ASC", q.OrderBy[0].Dir())
		assert.Equal(t, 2, q.Limit)
	})
}
