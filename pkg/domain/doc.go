/*
Package domain defines the entities of the trace comparison core: trace
documents and their sections, reconstructed execution plans, and the diff
report types produced by the engine.

All entities are immutable snapshots. The engine never mutates a document
after it has been decoded, and every comparison allocates a fresh result.
*/
package domain
