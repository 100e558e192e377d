// Package config loads the startup settings of the color display.
//
// Settings are layered: built-in defaults, then the user file
// (~/.config/colorcycle/config.yaml), then the project file
// (./.colorcycle/config.yaml), then COLORCYCLE_* environment variables
// (COLORCYCLE_SPEED=80, COLORCYCLE_SELECTION=1,3,5). Later layers override
// only the fields they set. A single explicit file can replace the two files
// with LoadConfigFromPath; the environment still applies on top.
//
// Example:
//
//	selection: [1, 3, 5, 7]
//	speed: 80
//	paused: false
//	darkMode: true
//	labels:
//	  1: red
//	  3: green
//
// The preset colors themselves are fixed; only their labels can be
// overridden.
package config
