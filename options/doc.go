// Package options compiles a declarative option table into the option
// schema of a manual world.
//
// A Compiler runs a fixed pipeline over Sources:
//
//  1. before-options hooks seed the working set
//  2. built-in options are added (start_inventory_from_pool, goal,
//     filler_traps, death_link)
//  3. table rows are compiled in order, or reconciled into options that
//     already exist
//  4. default-on toggles are derived from yaml_option references
//  5. after-options hooks post-process the result
//
// The resulting Schema is never mutated. Schema.BuildGroups assembles the
// presentation groups from a fresh copy of the recorded assignments, with
// the "Item & Location Options" group always last and open by default.
package options
