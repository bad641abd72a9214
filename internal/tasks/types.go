package tasks

// TypeInfo describes a task type that can be triggered on demand.
type TypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// Types lists the maintenance tasks exposed to operators. Audit cleanup is
// only available while auditing is on.
func Types(auditEnabled bool) []TypeInfo {
	types := []TypeInfo{
		{
			Type:        QueueSweepOrphanBookmarks,
			Description: "Remove bookmarks whose word no longer exists",
			Queue:       QueueSweepOrphanBookmarks,
		},
	}
	if auditEnabled {
		types = append(types, TypeInfo{
			Type:        QueueCleanupAuditEvents,
			Description: "Delete audit events older than the retention period",
			Queue:       QueueCleanupAuditEvents,
		})
	}
	return types
}
