package gocda

// Resource is any typed object built from a response item: *Entry, *Asset,
// *ContentType, *Space or *DeletedResource.
type Resource interface {
	ResourceSys() *Sys
}

// ResourceLink is an unresolved reference to a resource that was not part of
// the batch it was found in. It carries just enough to resolve it later.
type ResourceLink struct {
	Kind string // TypeEntry or TypeAsset
	ID   string
}

// Entry is a built content item. Fields holds the coerced values keyed by
// field id, Raw keeps the untouched wire values. Model is the populated
// custom model instance when one is registered for the content type.
type Entry struct {
	Sys    *Sys
	Locale string
	Fields map[string]Value
	Raw    map[string]interface{}
	Model  interface{}
}

func (e *Entry) ResourceSys() *Sys { return e.Sys }

// ContentTypeID returns the id of the entry's content type, empty for
// entries without a content type reference.
func (e *Entry) ContentTypeID() string {
	if e.Sys != nil && e.Sys.ContentType != nil && e.Sys.ContentType.Sys != nil {
		return e.Sys.ContentType.Sys.ID
	}
	return ""
}

// Asset is a built media resource.
type Asset struct {
	Sys         *Sys
	Title       string
	Description string
	File        *AssetFile
	Raw         map[string]interface{}
}

func (a *Asset) ResourceSys() *Sys { return a.Sys }

// DeletedResource is the tombstone built for DeletedEntry/DeletedAsset
// items. Only the sys block survives deletion.
type DeletedResource struct {
	Sys *Sys
}

func (d *DeletedResource) ResourceSys() *Sys { return d.Sys }

// Kind reports what was deleted, TypeEntry or TypeAsset.
func (d *DeletedResource) Kind() string {
	if d.Sys != nil && d.Sys.Type == TypeDeletedAsset {
		return TypeAsset
	}
	return TypeEntry
}
