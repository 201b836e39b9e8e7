// Package surface defines the platform-neutral template a browsing screen
// produces: a header with a start action and a list of rows. Host platforms
// turn a Template into their own widgets through a Renderer.
package surface
