// Package commands contains the use cases that change service orders.
//
// Every command is a value object that can only be built through its
// constructor and is paired with a handler. Handlers validate the command,
// open a unit of work, mutate the aggregate and commit. Drag-and-drop moves
// and quick actions evaluate the pipeline rules first and then delegate to
// ChangeServiceOrderStatusCommandHandler, which is the only place a status
// is written.
package commands
