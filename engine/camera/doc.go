// Package camera holds the globe camera state and the orbit controller that drives it.
//
// Matrix convention for the whole engine: mgl32.Mat4, column-major [16]float32 (OpenGL layout),
// column vectors transformed as p' = M * p, and MVP = Projection * View * Model.
// Clip-space depth is OpenGL's [-1, 1]; only the WebGPU backend remaps it to [0, 1] at draw time.
//
// Orbit sign convention: the model matrix is R_y(-yaw), so a point at world longitude λw sits at
// model longitude λw + yaw. The camera pitch is the negation of the orbit pitch, so an orbit pitch of
// -16 degrees lifts the eye 16 degrees above the equator.
package camera
