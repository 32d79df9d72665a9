package oasdoc

import (
	"github.com/erraggy/oasdoc/oas2"
	"github.com/erraggy/oasdoc/oas3"
)

// DocumentStats contains statistical information about an OAS document
type DocumentStats struct {
	// PathCount is the number of path entries defined
	PathCount int
	// OperationCount is the total number of operations across all paths
	OperationCount int
	// SchemaCount is the number of inline Schema Objects anywhere in the
	// document, as visited by oas2.WalkSchemas / oas3.WalkSchemas. Reference
	// variants are not counted.
	SchemaCount int
}

// collectStats computes statistics for whichever variant the Doc holds.
func collectStats(d *Doc) DocumentStats {
	switch {
	case d.v2 != nil:
		return collectV2Stats(d.v2)
	case d.v3 != nil:
		return collectV3Stats(d.v3)
	default:
		return DocumentStats{}
	}
}

func collectV2Stats(doc *oas2.Document) DocumentStats {
	var stats DocumentStats
	if doc.Paths != nil {
		stats.PathCount = len(doc.Paths.Items)
		for _, item := range doc.Paths.Items {
			item.EachOperation(func(string, *oas2.Operation) {
				stats.OperationCount++
			})
		}
	}
	oas2.WalkSchemas(doc, func(*oas2.Schema, string) bool {
		stats.SchemaCount++
		return true
	})
	return stats
}

func collectV3Stats(doc *oas3.Document) DocumentStats {
	var stats DocumentStats
	if doc.Paths != nil {
		stats.PathCount = len(doc.Paths.Items)
		for _, item := range doc.Paths.Items {
			item.EachOperation(func(string, *oas3.Operation) {
				stats.OperationCount++
			})
		}
	}
	oas3.WalkSchemas(doc, func(*oas3.Schema, string) bool {
		stats.SchemaCount++
		return true
	})
	return stats
}
