/*
	Package dvid provides types, constants, and functions that have no other dependencies
	and can be used by all packages within the label pyramid tools.  This includes points
	and extents, flat voxel volumes, leveled logging, and the data-parallel loop used by
	the downres and merge passes.  Since these elements are used at multiple layers, we
	separate them here so datatype packages can share them without cyclic imports.
*/
package dvid
