// Package hcl reads schema documents written in HCL. A document sets the
// top-level attributes `randomizer`, `profiles`, `fields` and `postprocess`;
// their values are converted to the ordered value tree the schema package
// consumes.
package hcl
