// Package config resolves chart configuration groups.
//
// A configuration source holds named groups of chart options. A group may name
// a parent through its "group" key; resolving a group walks the parent chain and
// merges every ancestor underneath it, so options set closer to the requested
// group win:
//
//	default:
//	  type: line
//	  interval_max: 5
//	  series_color: [red]
//	dashboard:
//	  group: default
//	  interval_max: 10
//
// Merge(provider, "dashboard") yields {type: line, interval_max: 10, series_color: [red]}.
//
// Groups are untyped maps; Decode converts a merged group into Options.
package config
