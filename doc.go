/*
Labelpyramid builds reduced-resolution levels of large labeled 3D volumes and reconciles
overlapping blocks of intensity or label data.

Packages

	dvid                      points, flat voxel volumes, leveled logging, parallel loops
	datatype/common/labels    the 2x2 label vote and whole-volume label passes
	datatype/common/downres   tile builders, canvas assembly, zoom and pyramid building
	datatype/imageblk         elementwise merge of overlapping intensity or label blocks
	config                    TOML or YAML settings for pyramid builds and logging
	cmd/dvid-pyramid          command-line front end over raw little-endian files

Each coarse label voxel is voted from a 2x2 block of the finer level.  The first nonzero
label of the top row is the initial candidate and a later label only replaces it if it
repeats a label seen earlier in the block, so background never wins over content.
Isotropic levels vote the upper plane of each 2x2x2 block and consult the lower plane
only when the upper vote is background.
*/
package labelpyramid
