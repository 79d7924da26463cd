package gocda

import "fmt"

const catContentTypeJSON = `{
	"sys": {"id": "cat", "type": "ContentType", "revision": 2},
	"name": "Cat",
	"displayField": "name",
	"fields": [
		{"id": "name", "name": "Name", "type": "Text"},
		{"id": "lives", "name": "Lives", "type": "Integer"},
		{"id": "likes", "name": "Likes", "type": "Array", "items": {"type": "Symbol"}},
		{"id": "birthday", "name": "Birthday", "type": "Date"},
		{"id": "center", "name": "Center", "type": "Location"},
		{"id": "bestFriend", "name": "Best Friend", "type": "Link", "linkType": "Entry"},
		{"id": "image", "name": "Image", "type": "Link", "linkType": "Asset"}
	]
}`

const nyancatJSON = `{
	"sys": {
		"id": "nyancat",
		"type": "Entry",
		"revision": 5,
		"createdAt": "2013-06-27T22:46:19.513Z",
		"updatedAt": "2013-09-04T09:19:39.027Z",
		"contentType": {"sys": {"type": "Link", "linkType": "ContentType", "id": "cat"}}
	},
	"fields": {
		"name": "Nyan Cat",
		"lives": 1337,
		"likes": ["rainbows", "fish"],
		"birthday": "2011-04-04T22:00:00Z",
		"center": {"lat": 52.5018, "lon": 13.41115},
		"bestFriend": {"sys": {"type": "Link", "linkType": "Entry", "id": "happycat"}},
		"image": {"sys": {"type": "Link", "linkType": "Asset", "id": "nyancat-img"}},
		"ghostFriend": {"sys": {"type": "Link", "linkType": "Entry", "id": "garfield"}}
	}
}`

const happycatJSON = `{
	"sys": {
		"id": "happycat",
		"type": "Entry",
		"revision": 8,
		"contentType": {"sys": {"type": "Link", "linkType": "ContentType", "id": "cat"}}
	},
	"fields": {
		"name": "Happy Cat",
		"lives": 1,
		"bestFriend": {"sys": {"type": "Link", "linkType": "Entry", "id": "nyancat"}}
	}
}`

const nyancatAssetJSON = `{
	"sys": {"id": "nyancat-img", "type": "Asset", "revision": 1},
	"fields": {
		"title": "Nyan Cat",
		"file": {
			"url": "//images.example.com/nyancat.png",
			"fileName": "nyancat.png",
			"contentType": "image/png",
			"details": {"size": 12273, "image": {"width": 250, "height": 250}}
		}
	}
}`

var catCollectionJSON = fmt.Sprintf(`{
	"sys": {"type": "Array"},
	"total": 2,
	"skip": 0,
	"limit": 100,
	"items": [%s, %s],
	"includes": {"Asset": [%s]}
}`, nyancatJSON, happycatJSON, nyancatAssetJSON)

func catTypes() ContentTypeLookup {
	ct := mustContentType(catContentTypeJSON)
	return NewContentTypeLookup([]*ContentType{ct})
}

func mustContentType(raw string) *ContentType {
	r, err := BuildResource([]byte(raw), nil)
	if err != nil {
		panic(err)
	}
	return r.(*ContentType)
}

func mustEntry(raw string, types ContentTypeLookup) *Entry {
	r, err := BuildResource([]byte(raw), types)
	if err != nil {
		panic(err)
	}
	return r.(*Entry)
}
