// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ColumnVertexShader is the vertex shader for voxel column meshes.
//
//go:embed column.vert
var ColumnVertexShader string

// ColumnFragmentShader is the fragment shader for voxel column meshes.
//
//go:embed column.frag
var ColumnFragmentShader string

// CrosshairVertexShader is the vertex shader for the screen-space crosshair.
//
//go:embed crosshair.vert
var CrosshairVertexShader string

// CrosshairFragmentShader is the fragment shader for the crosshair.
//
//go:embed crosshair.frag
var CrosshairFragmentShader string

// OutlineVertexShader is the vertex shader for world-space line overlays.
//
//go:embed outline.vert
var OutlineVertexShader string

// OutlineFragmentShader is the fragment shader for line overlays.
//
//go:embed outline.frag
var OutlineFragmentShader string
