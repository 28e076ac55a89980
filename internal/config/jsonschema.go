package config

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var schemaSource string

const schemaURL = "stressd-config.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("invalid config schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid config schema: %w", err)
	}
	return schema, nil
})

// checkSchema validates a generic document against the embedded schema.
// Schema violations are returned as *ValidationErrors keyed by instance
// location.
func checkSchema(doc interface{}) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	errs := &ValidationErrors{}
	collectSchemaErrors(validationErr, errs)
	if !errs.HasErrors() {
		errs.Add("", validationErr.Error())
	}
	return errs
}

// collectSchemaErrors flattens the leaf causes of a jsonschema error.
func collectSchemaErrors(err *jsonschema.ValidationError, errs *ValidationErrors) {
	if len(err.Causes) == 0 {
		errs.Add(instancePath(err.InstanceLocation), err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, errs)
	}
}

// instancePath converts a JSON pointer like /server/port to server.port.
func instancePath(location string) string {
	return strings.ReplaceAll(strings.TrimPrefix(location, "/"), "/", ".")
}
