// Package archecs implements an archetype-based Entity-Component-System
// storage engine: entities are (id, generation) handles, components are
// plain-data records grouped by archetype, and each archetype packs its
// entities into 16 KiB memory blocks laid out as parallel, correctly
// aligned columns.
//
// The engine is single-threaded and non-reentrant. No type in this package
// does its own locking; callers owning a *Registry from one goroutine at a
// time get the whole contract for free, and nothing here tries to paper
// over concurrent misuse.
package archecs
