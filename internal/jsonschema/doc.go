// Package jsonschema provides a minimal JSON Schema representation used to
// describe extraction targets to language-model backends, and a validator for
// checking decoded documents against such a schema.
//
// [Schema] is the wire form sent as function parameters. [Compile] turns a
// Schema into a reusable [Validator] backed by santhosh-tekuri/jsonschema.
package jsonschema
