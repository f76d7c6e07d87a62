// Package diagnostic turns the errors of a derivation run into coded,
// positioned diagnostics and prints them.
//
// Codes:
//   - unsupported_declaration: the selected type is not a plain struct
//   - unsupported_field_type: a field type has no literal representation
//   - invalid_directive: a //quote:derive comment is malformed
//   - name_conflict: generated code would clash with the package
//   - type_not_found: a requested type is not declared
//   - internal: anything else
//
// A successful run may still carry warnings and infos:
//   - package_not_loaded: a config entry names a package outside the run
//   - no_records: a package of the run selects no record
package diagnostic
