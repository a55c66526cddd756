// Package namespace models the dot separated tree that groups event types
// by functional area.
//
// # Path Format
//
//	Config.update                 domain operation
//	Cookie.State.delete           notification under a State sub-namespace
//	Model.Project.State.update    model entity with its own State
//
// # Queries
//
// A Tree stores concrete paths and answers wildcard queries:
//
//	Cookie.*          direct operations of Cookie (not Cookie.State.update)
//	Cookie.**         everything below Cookie
//	**.State.*        every notification
//	Model.*.read      read operation of each model entity
//
// A Tree is frozen once the catalog is built. Inserting into a frozen tree
// fails with ErrFrozen and leaves the tree unchanged.
package namespace
