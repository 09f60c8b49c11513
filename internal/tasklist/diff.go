package tasklist

import (
	"github.com/google/uuid"
	"github.com/limbo/manifest/pkg/entity"
)

// Changes is what a repository has to write to turn before into after.
type Changes struct {
	Removed []uuid.UUID
	Updated []entity.DailyTask
	Added   []entity.DailyTask
}

func (c Changes) Empty() bool {
	return len(c.Removed) == 0 && len(c.Updated) == 0 && len(c.Added) == 0
}

// Diff compares two snapshots of the same user's list. Removed follows the
// order of before, Updated and Added follow the order of after.
func Diff(before, after []entity.DailyTask) Changes {
	var c Changes
	prev := make(map[uuid.UUID]entity.DailyTask, len(before))
	for _, t := range before {
		prev[t.ID] = t
	}
	next := make(map[uuid.UUID]struct{}, len(after))
	for _, t := range after {
		next[t.ID] = struct{}{}
		old, ok := prev[t.ID]
		if !ok {
			c.Added = append(c.Added, t)
			continue
		}
		if old.Order != t.Order || old.Method != t.Method || old.IsCompleted != t.IsCompleted {
			c.Updated = append(c.Updated, t)
		}
	}
	for _, t := range before {
		if _, ok := next[t.ID]; !ok {
			c.Removed = append(c.Removed, t.ID)
		}
	}
	return c
}
