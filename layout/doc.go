// Package layout defines the spatial-container contract consumed by the
// solver, plus bulk mutation helpers shared by every implementation.
//
// What:
//
//   - Layout[V, C] is the interface a cell container implements: lookup by
//     coordinate, iteration, candidate filtering, collapse, deep clone.
//   - Package-level helpers fan single-cell operations out across one
//     coordinate, a coordinate list, or every cell of the layout.
//
// Why:
//
//   - Go interfaces carry no default methods; expressing the bulk
//     operations as package functions over the interface gives every
//     layout implementation the same behavior for free.
//   - Out-of-bounds coordinates are not errors: lookups report absence and
//     bulk helpers silently skip, so edge cells can name neighbors that do
//     not exist.
//
// Complexity:
//
//   - Per-coordinate helpers: O(1) lookups plus the cell operation.
//   - Whole-layout helpers:   O(n) over the cell count.
//
// Errors: none. Absence is signaled by ok=false, never by error values.
package layout
