// Package format defines the enumerations shared by chartlink packages:
// chart types, visible axes and snapshot compression types.
package format
