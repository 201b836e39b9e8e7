// Package screen builds the two-level bookmark browsing surface: a list of
// collections and, once one is opened, the bookmarks inside it.
//
// A Screen is immutable once constructed. Opening a collection pushes a new
// Screen onto the Navigator instead of changing the current one, and a popped
// Screen is disposed so that late clicks on its rows do nothing.
package screen
