// Package recipes is the recipe-list feature: its state shape, its closed
// action set and the pure reducer driving them. The reducer describes all
// I/O as store effects; the only collaborator it knows is a core.Provider
// handed in at construction.
package recipes
