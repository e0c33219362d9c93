package domain

import (
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// todoCreateSchema checks the structural shape of a create/update payload
// before field normalization: required keys and JSON types only. Length and
// emptiness rules live in NewTodoCreate, where trimming happens first.
const todoCreateSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["title", "description"],
	"properties": {
		"title": {"type": "string"},
		"description": {"type": "string"},
		"done": {"type": "boolean"}
	}
}`

var todoCreateCompiled = mustCompileSchema("todo_create.json", todoCreateSchema)

func mustCompileSchema(name, src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(name)
}

// ValidateCreatePayload validates a decoded JSON document against the
// TodoCreate schema. Failures come back as ValidationErrors with one entry
// per failing field.
func ValidateCreatePayload(doc any) error {
	err := todoCreateCompiled.Validate(doc)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}

	var errs ValidationErrors
	collectSchemaErrors(ve, &errs)
	if len(errs) == 0 {
		errs = append(errs, &ValidationError{Field: "body", Reason: ve.Message})
	}
	return errs
}

func collectSchemaErrors(err *jsonschema.ValidationError, errs *ValidationErrors) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		field := strings.TrimPrefix(err.InstanceLocation, "/")
		if field == "" {
			field = "body"
		}
		*errs = append(*errs, &ValidationError{Field: field, Reason: err.Message})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(cause, errs)
	}
}
