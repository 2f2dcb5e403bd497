// Package tsplib reads symmetric TSPLIB instances and tour files.
//
// Supported header keys: NAME, TYPE (TSP, TOUR), COMMENT, DIMENSION,
// EDGE_WEIGHT_TYPE, EDGE_WEIGHT_FORMAT, NODE_COORD_TYPE, DISPLAY_DATA_TYPE.
// Supported sections: NODE_COORD_SECTION, EDGE_WEIGHT_SECTION,
// DISPLAY_DATA_SECTION (parsed for positions), TOUR_SECTION, EOF.
//
// Distances follow the TSPLIB definitions:
//
//	EUC_2D   nint(√(dx²+dy²))
//	CEIL_2D  ⌈√(dx²+dy²)⌉
//	ATT      pseudo-Euclidean: r = √((dx²+dy²)/10), t = nint(r), t+1 if t < r
//	GEO      great-circle distance on the idealized sphere, RRR = 6378.388
//	EXPLICIT FULL_MATRIX, UPPER_ROW, LOWER_ROW, UPPER_DIAG_ROW, LOWER_DIAG_ROW
//
// A Problem implements core.Instance and core.Positioner; hand it to
// core.NewGraph to freeze it. Node ids are 1-based in files and 0-based in
// memory.
//
// Errors: ErrFormat for malformed input, ErrUnsupported for valid TSPLIB that
// this package does not handle (ATSP, 3D coordinates, special weights).
package tsplib
