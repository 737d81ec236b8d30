// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package ocean renders a camera-adaptive, tessellated sea surface.
//
// The surface is a square domain split into patches by a quadtree
// that is rebuilt whenever the camera moves (see package terrain).
// Patches are drawn through the narrow graphics interfaces of
// package driver, and package light supplies the lighting uniforms.
//
// This package holds the process-wide logger shared by the others.
package ocean
