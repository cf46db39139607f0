// Package family implements pseudo potential family management.
//
// A family is a named, durable collection of pseudo potential records with
// at most one record per chemical element. The package covers the full
// lifecycle:
//
//  1. Builder: ParseRecordsFromDirectory turns a directory of potential
//     files into validated records, deriving missing element symbols from
//     the ELEMENT.EXTENSION filename convention.
//  2. Container: Family owns the records, enforces uniqueness and the
//     accepted record format, and serves element lookups through a lazily
//     built element index that falls back to a store query on a miss.
//  3. Verification: VerifyFamily reconciles the family's node rows against
//     the blobs in object storage.
//
// # Persistence
//
// The container talks to the persistence layer through the narrow Backend
// interface; Repository is the production implementation over the graph
// store (core/graph) and object storage (core/storage). Tests substitute an
// in-memory backend.
//
// # Components
//
//   - Service: orchestrates family operations for CLI and HTTP consumers.
//   - Handler: exposes the HTTP endpoints under /families.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /families : list all families
//   - GET /families/:label : family summary
//   - GET /families/:label/elements : element symbols
//   - GET /families/:label/pseudos/:element : record lookup (?content=true streams the file)
//   - GET /families/:label/verify : content verification report
package family
