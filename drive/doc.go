// Package drive turns keyboard state into position and rotation updates for
// two independently controlled cars.
//
// All state lives in an Updater owned by the caller. Key-down events
// recompute both cars against the full set of held keys and request a
// refresh; key-up events only shrink the held set. The hosting loop drains
// the refresh once per display cycle and projects the state onto its
// visual targets.
package drive
