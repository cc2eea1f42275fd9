// Package barchart draws animated column charts.
//
// Each data point of a series is rendered by a PointView which owns one
// shape and one label on the chart's draw area. A point view lives through
// the states Uninitialized, Rendered, Disposing and Disposed:
//
//   - The first Draw creates the shape at the axis baseline and grows it to
//     its geometry with a small overshoot ("bounce").
//   - Later Draws retarget the shape directly to the new geometry.
//   - DrawLabel creates the label next to the shape and tweens it to its
//     location.
//   - Dispose shrinks the shape into the baseline and detaches shape and
//     label once that animation has finished.
//
// Animations run on the chart's anim.Animator which the host advances
// from its frame loop; Draw, DrawLabel and Dispose never block.
//
// Chart is a small chart engine built on top: it trains the scales, lays
// out the columns of several series side by side and drives the point
// views through one re-render pass per Update.
//
// Geometry is in pixels of the draw area, origin top-left, y down.
package barchart
