// Package parse provides the record constructors for the supported pseudo
// potential file formats.
//
// Each constructor validates the raw bytes of one file and produces a
// models.PseudoRecord tagged with its format. Constructors are looked up by
// format tag through a registry, so new formats can be added without
// touching the directory builder.
//
// Supported formats:
//   - pseudo.upf  : Unified Pseudopotential Format, v1 and v2 headers
//   - pseudo.psp8 : ABINIT psp8, element derived from the zatom field
//   - pseudo      : generic fallback that accepts any non-empty file
package parse
