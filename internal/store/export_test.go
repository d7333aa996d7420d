// export_test.go exposes unexported identifiers to the external
// store_test package.
package store

const (
	TestStateKey         = stateKey
	TestSchemaVersionKey = schemaVersionKey
)
