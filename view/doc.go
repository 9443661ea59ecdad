// Package view compiles declarative, YAML-backed view definitions into
// ordinary serializers. A view names a Go type's fields, optionally renames
// output keys, and references other views for nested objects and
// collections. Compiled views lower directly onto the serializer package's
// Builder primitives; there is no second engine.
package view
