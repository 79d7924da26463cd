package gocda

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Model declarations can be loaded from a YAML file instead of being
// registered in code. File-declared models have no constructor, so they
// bind to map[string]interface{} instances:
//
//	models:
//	  - contentType: cat
//	    fields:
//	      - attr: name
//	        field: name
//	        type: Text
//	      - attr: bestFriend
//	        field: bestFriend
//	        type: Link
//	        linkType: Entry

type modelsFile struct {
	Models []modelDecl `yaml:"models"`
}

type modelDecl struct {
	ContentType string      `yaml:"contentType"`
	Fields      []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Attr     string `yaml:"attr"`
	Field    string `yaml:"field"`
	Type     string `yaml:"type"`
	LinkType string `yaml:"linkType"`
	ItemType string `yaml:"itemType"`
}

// ParseModels reads YAML model declarations into descriptors.
func ParseModels(data []byte) ([]*ModelDescriptor, error) {
	var file modelsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse models: %w", err)
	}

	descs := make([]*ModelDescriptor, 0, len(file.Models))
	for _, m := range file.Models {
		if m.ContentType == "" {
			return nil, fmt.Errorf("parse models: declaration without contentType")
		}
		d := &ModelDescriptor{ContentType: m.ContentType}
		for _, f := range m.Fields {
			attr := f.Attr
			if attr == "" {
				attr = f.Field
			}
			d.Fields = append(d.Fields, ModelField{
				Attr:     attr,
				FieldID:  f.Field,
				Type:     f.Type,
				LinkType: f.LinkType,
				ItemType: f.ItemType,
			})
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// LoadModels reads a YAML model file and registers every declaration.
func LoadModels(path string, registry *ModelRegistry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	descs, err := ParseModels(data)
	if err != nil {
		return err
	}
	for _, d := range descs {
		if err := registry.Register(d); err != nil {
			return err
		}
	}
	return nil
}
