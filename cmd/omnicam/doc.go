// Command omnicam lists webcams, inspects their formats and controls,
// changes control values and takes snapshots.
//
// Usage:
//
//	omnicam list
//	omnicam formats [--camera NAME|INDEX]
//	omnicam controls
//	omnicam set Brightness 0.5 --fraction
//	omnicam snapshot -o frame.png --width 320
//	omnicam config init
//
// The --fake flag swaps real devices for a simulated one.
package main
