package gocda

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cat is the custom model used across collection tests. Link-valued
// attributes are interface{} so resolved references keep their identity.
type Cat struct {
	Name       string      `mapstructure:"name"`
	Lives      int64       `mapstructure:"lives"`
	Likes      []string    `mapstructure:"likes"`
	Birthday   time.Time   `mapstructure:"birthday"`
	BestFriend interface{} `mapstructure:"bestFriend"`
}

func catRegistry(t *testing.T) *ModelRegistry {
	t.Helper()
	reg := NewModelRegistry(OverwriteDuplicates)
	require.NoError(t, reg.Register(&ModelDescriptor{
		ContentType: "cat",
		New:         func() interface{} { return &Cat{} },
		Fields: []ModelField{
			{Attr: "name", FieldID: "name", Type: FieldTypeText},
			{Attr: "lives", FieldID: "lives", Type: FieldTypeInteger},
			{Attr: "likes", FieldID: "likes", Type: FieldTypeArray, ItemType: FieldTypeSymbol},
			{Attr: "birthday", FieldID: "birthday", Type: FieldTypeDate},
			{Attr: "bestFriend", FieldID: "bestFriend", Type: FieldTypeLink, LinkType: TypeEntry},
		},
	}))
	return reg
}

func TestBuildCollection(t *testing.T) {
	arr, err := BuildCollection([]byte(catCollectionJSON), catTypes(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, arr.Total)
	assert.Equal(t, 0, arr.Skip)
	assert.Equal(t, 100, arr.Limit)
	require.Equal(t, 2, arr.Len())

	nyancat, ok := arr.At(0).(*Entry)
	require.True(t, ok)
	happycat, ok := arr.At(1).(*Entry)
	require.True(t, ok)

	// Primary items resolve against each other.
	friend, ok := nyancat.Fields["bestFriend"].Resource()
	require.True(t, ok)
	assert.Same(t, happycat, friend)

	// Included assets resolve too and are reachable through Lookup.
	img, ok := nyancat.Fields["image"].Resource()
	require.True(t, ok)
	included, ok := arr.Lookup(TypeAsset, "nyancat-img")
	require.True(t, ok)
	assert.Same(t, included, img)

	// The include list never leaks into the items.
	for _, r := range arr.Items {
		_, isAsset := r.(*Asset)
		assert.False(t, isAsset)
	}

	// Absent target stays observable as a stub.
	link, ok := nyancat.Fields["ghostFriend"].Link()
	require.True(t, ok)
	assert.Equal(t, "garfield", link.ID)
}

func TestBuildCollectionCustomModel(t *testing.T) {
	arr, err := BuildCollection([]byte(catCollectionJSON), catTypes(), catRegistry(t))
	require.NoError(t, err)

	nyancat := arr.Entries()[0]
	cat, ok := nyancat.Model.(*Cat)
	require.True(t, ok, "registered content type must yield the custom model")

	assert.Equal(t, "Nyan Cat", cat.Name)
	assert.Equal(t, int64(1337), cat.Lives)
	assert.Equal(t, []string{"rainbows", "fish"}, cat.Likes)
	assert.Equal(t, 2011, cat.Birthday.Year())

	happycat := arr.Entries()[1]
	require.NotNil(t, cat.BestFriend)
	assert.Same(t, happycat, cat.BestFriend)
}

func TestBuildCollectionUnknownContentType(t *testing.T) {
	dogCollection := `{
		"sys": {"type": "Array"},
		"total": 1, "skip": 0, "limit": 100,
		"items": [{
			"sys": {
				"id": "rex",
				"type": "Entry",
				"contentType": {"sys": {"type": "Link", "linkType": "ContentType", "id": "dog"}}
			},
			"fields": {"name": "Rex", "age": 7}
		}]
	}`
	arr, err := BuildCollection([]byte(dogCollection), nil, catRegistry(t))
	require.NoError(t, err)

	e := arr.Entries()[0]
	assert.Nil(t, e.Model)
	assert.Equal(t, "Rex", e.Fields["name"].Scalar())
	assert.Equal(t, float64(7), e.Fields["age"].Scalar())
}

func TestBuildCollectionSkipsMalformedItems(t *testing.T) {
	mixed := fmt.Sprintf(`{
		"sys": {"type": "Array"},
		"total": 2, "skip": 0, "limit": 100,
		"items": [{"sys": {"id": "broken"}, "fields": {}}, %s]
	}`, happycatJSON)

	arr, err := BuildCollection([]byte(mixed), catTypes(), nil)

	var malformed *MalformedResourceError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "broken", malformed.ID)

	// The healthy item still came through.
	require.Equal(t, 1, arr.Len())
	assert.Equal(t, "happycat", arr.Entries()[0].Sys.ID)
}

func TestArraySlice(t *testing.T) {
	arr, err := BuildCollection([]byte(catCollectionJSON), catTypes(), nil)
	require.NoError(t, err)

	assert.Len(t, arr.Slice(0, 2), 2)
	assert.Len(t, arr.Slice(1, 2), 1)
	assert.Len(t, arr.Slice(0, 10), 2)
	assert.Nil(t, arr.Slice(2, 2))
	assert.Nil(t, arr.Slice(-5, -1))
}
