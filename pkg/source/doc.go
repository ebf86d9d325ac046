// Package source loads deck definitions and builds decks from them.
//
// A deck file is TOML or YAML. It names a theme and lists slides; every
// slide has a kind and the fields that kind uses:
//
//	name = "sdv-overview"
//	title = "SDV standard overview"
//	theme = "keti"
//
//	[[slides]]
//	kind = "title"
//	title = "China SDV Standard"
//	subtitle = "SDV/T 001-2022"
//
//	[[slides]]
//	kind = "content"
//	title = "Goals"
//	items = [
//	  { heading = "Scope", bullets = ["atomic services", "device abstraction"] },
//	  {},
//	  { text = "closing remark" },
//	]
//
// Three decks are embedded in the binary; [Builtins] lists them and [Open]
// resolves a name or file path. [Build] numbers the slides and hands each
// one to the matching builder in package slides.
package source
