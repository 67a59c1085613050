package swagger

import "fmt"

// FormatBytes formats a byte count into a human-readable string using binary
// units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// DocumentStats contains statistical information about an API description
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	ParameterCount int // Total number of operation parameters
	TagCount       int // Number of tags defined
}

// GetDocumentStats returns statistics for a parsed document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.PathCount = len(doc.Paths)
	stats.TagCount = len(doc.Tags)
	for _, item := range doc.Paths {
		if item == nil {
			continue
		}
		for _, op := range Operations(item) {
			if op == nil {
				continue
			}
			stats.OperationCount++
			stats.ParameterCount += len(op.Parameters)
		}
		stats.ParameterCount += len(item.Parameters)
	}

	return stats
}
