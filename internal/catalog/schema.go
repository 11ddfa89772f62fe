package catalog

import (
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// definitionSchema constrains the frontmatter of a service document. Keys and
// aliases must already be slug shaped; the loader normalizes display names
// before validation so authors can write either form.
const definitionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["key", "name"],
  "properties": {
    "key": {"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
    "name": {"type": "string", "minLength": 1},
    "summary": {"type": "string"},
    "category": {"type": "string"},
    "aliases": {
      "type": "array",
      "items": {"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
      "uniqueItems": true
    }
  },
  "additionalProperties": true
}`

var compiledDefinitionSchema = mustCompileDefinitionSchema()

func mustCompileDefinitionSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("service-definition.json", strings.NewReader(definitionSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("service-definition.json")
}
