// Package schema ships the VR JSON Schema and compiles it into the
// constraint tables the models package validates against.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"sync"
)

//go:embed vr.json
var schemaFS embed.FS

const schemaPath = "vr.json"

// Path returns the location of the VR schema resource within FS.
func Path() string {
	return schemaPath
}

// FS returns the embedded filesystem holding the VR schema.
func FS() fs.FS {
	return schemaFS
}

// Definition is the compiled constraint set for one schema definition.
type Definition struct {
	Name       string
	Required   []string
	TypeConst  string
	Properties []string
}

type document struct {
	Definitions map[string]definition `json:"definitions"`
}

type definition struct {
	Type       string              `json:"type"`
	Pattern    string              `json:"pattern"`
	Properties map[string]property `json:"properties"`
	Required   []string            `json:"required"`
}

type property struct {
	Type    string `json:"type"`
	Const   string `json:"const"`
	Pattern string `json:"pattern"`
}

type compiled struct {
	definitions map[string]Definition
	curie       *regexp.Regexp
	sequence    *regexp.Regexp
}

// load parses the embedded schema once. The resource ships with the
// binary, so a parse failure is a build defect, not a runtime condition.
var load = sync.OnceValue(func() *compiled {
	data, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		panic(fmt.Sprintf("schema: read embedded %s: %v", schemaPath, err))
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		panic(fmt.Sprintf("schema: parse embedded %s: %v", schemaPath, err))
	}

	c := &compiled{definitions: make(map[string]Definition, len(doc.Definitions))}
	for name, def := range doc.Definitions {
		if def.Type != "object" {
			continue
		}
		d := Definition{
			Name:     name,
			Required: append([]string(nil), def.Required...),
		}
		for prop, p := range def.Properties {
			d.Properties = append(d.Properties, prop)
			if prop == "type" && p.Const != "" {
				d.TypeConst = p.Const
			}
		}
		sort.Strings(d.Properties)
		c.definitions[name] = d
	}

	c.curie = mustCompile(doc, "CURIE", "")
	c.sequence = mustCompile(doc, "SequenceState", "sequence")
	return c
})

func mustCompile(doc document, defName, propName string) *regexp.Regexp {
	def, ok := doc.Definitions[defName]
	if !ok {
		panic(fmt.Sprintf("schema: definition %s missing from %s", defName, schemaPath))
	}
	pattern := def.Pattern
	if propName != "" {
		pattern = def.Properties[propName].Pattern
	}
	if pattern == "" {
		panic(fmt.Sprintf("schema: definition %s has no pattern", defName))
	}
	return regexp.MustCompile(pattern)
}

// Definitions returns the compiled object definitions sorted by name.
func Definitions() []Definition {
	c := load()
	defs := make([]Definition, 0, len(c.definitions))
	for _, d := range c.definitions {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Lookup returns the compiled definition for a model name.
func Lookup(name string) (Definition, bool) {
	d, ok := load().definitions[name]
	return d, ok
}

// CURIEPattern returns the schema's CURIE syntax pattern.
func CURIEPattern() *regexp.Regexp {
	return load().curie
}

// SequencePattern returns the schema's literal sequence syntax pattern.
func SequencePattern() *regexp.Regexp {
	return load().sequence
}
