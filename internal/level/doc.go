// Package level reads the line-oriented .nxlv level format and walks the
// resulting documents.
//
// The format is a flat sequence of tagged blocks:
//
//	$GADGET
//	  STYLE namida
//	  PIECE exit
//	$END
//
//	$TERRAINGROUP
//	  NAME bridge
//	  $TERRAIN
//	    STYLE orig_marble
//	    PIECE plank
//	  $END
//	$END
//
//	$TERRAIN
//	  STYLE *GROUP
//	  PIECE bridge
//	$END
//
// Parsing is tolerant: unknown lines are skipped and a missing $END simply
// closes the block at end of input. Field values are taken at a fixed offset
// after the keyword (6 bytes for STYLE and PIECE, 5 bytes for NAME) and are
// not trimmed again.
//
// A terrain part whose style is *GROUP (any case) refers to a terrain group by
// name. VisitTerrain expands those references with a LIFO work list, so leaves
// are not reported in document order once groups are involved.
package level
