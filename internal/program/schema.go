package program

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// expressionSchema is the JSON Schema for a program document: a required
// "top" expression and an optional array of function definitions. It checks
// that the top-level expression and each function body carry a known tag;
// it does not descend into nested expression nodes, whose tags and shapes
// are checked by the decoder in decode.go. Validating against it surfaces
// structural errors before evaluation begins, per §7 ("Parse/address
// errors: structural; surfaced before evaluation begins. Fatal.").
const expressionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://foppl-lang.dev/schema/program.json",
  "$defs": {
    "expr": {
      "type": "object",
      "required": ["tag"],
      "properties": {
        "tag": {
          "type": "string",
          "enum": ["boolean", "integer", "float", "null", "variable", "let",
            "sample", "observe", "if", "apply", "vector", "foreach", "loop"]
        }
      }
    },
    "binding": {
      "type": "object",
      "required": ["name", "expr"],
      "properties": {
        "name": {"type": "string"},
        "expr": {"$ref": "#/$defs/expr"}
      }
    },
    "function": {
      "type": "object",
      "required": ["name", "params", "body"],
      "properties": {
        "name": {"type": "string"},
        "params": {"type": "array", "items": {"type": "string"}},
        "body": {"$ref": "#/$defs/expr"}
      }
    }
  },
  "type": "object",
  "required": ["top"],
  "properties": {
    "functions": {"type": "array", "items": {"$ref": "#/$defs/function"}},
    "top": {"$ref": "#/$defs/expr"}
  }
}`

// CompileSchema compiles the program schema once, matching the teacher's
// core/types/validation.go pattern of a jsonschema.NewCompiler with an
// explicit draft.
func CompileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	const resourceName = "program.json"
	if err := compiler.AddResource(resourceName, strings.NewReader(expressionSchema)); err != nil {
		return nil, fmt.Errorf("program: compiling schema resource: %w", err)
	}
	schema, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("program: compiling schema: %w", err)
	}
	return schema, nil
}
