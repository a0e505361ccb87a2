// Package objects contains transport objects shared by the direct surface
// and the graph surface. To avoid circular dependencies, we put them here.
package objects
