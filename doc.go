// Package dragdrop is a thin coordination layer over a platform's native
// drag-and-drop interaction model. It exposes two independently
// constructible entities, a drag Source and a drop Target, configured
// with simple callback hooks instead of the verbose native event
// contract.
//
// The package is platform-agnostic: it depends only on the Element,
// Carrier and Event capability contracts. A binding (such as the giodrag
// subpackage for Gio) delivers the native events and supplies the
// transfer carrier. Sources and targets are linked only through a shared
// Coordinator, populated transiently while a gesture is in flight.
//
// File and binary payloads, simultaneous multi-pointer drags, and
// transfer-level functionality beyond source/target coordination are out
// of scope.
package dragdrop
