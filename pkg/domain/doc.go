/*
Package domain contains the simplified design model produced by Espalier.

It defines the intermediate representation a raw design document is trained
into: the node tree, the content-addressed style table, and the descriptor
types (fills, layout, effects, strokes, text styles) those table entries
hold. This package is kept pure and free of external dependencies like I/O
or the source API client, following Hexagonal Architecture principles.

# Key Entities

  - SimplifiedDesign: One parse result (root nodes, component metadata, style table).
  - SimplifiedNode: One tree element; style aspects are StyleID references, never inline.
  - StyleID / GlobalVars: Content-addressed style storage shared within a single parse.
  - Fill: The closed paint variant (ColorValue, ImageFill, GradientFill).
  - Layout / Effects / Stroke / TextStyle: CSS-like descriptors registered in the table.
*/
package domain
