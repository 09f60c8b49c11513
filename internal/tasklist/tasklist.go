// Package tasklist keeps a user's daily tasks in a dense 1-based order and
// exposes the mutations the practice screens need. It does no I/O: callers
// load tasks, mutate a List and persist the result of Diff.
package tasklist

import (
	"sort"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/pkg/entity"
)

const DefaultMethod = entity.MethodTyping

type List struct {
	userID uuid.UUID
	tasks  []entity.DailyTask
	newID  func() uuid.UUID
}

// New builds a list owned by userID. Tasks are sorted by their stored order
// and renumbered 1..N, so gaps left by earlier writers are repaired.
func New(userID uuid.UUID, tasks []entity.DailyTask) *List {
	l := &List{
		userID: userID,
		tasks:  make([]entity.DailyTask, len(tasks)),
		newID:  uuid.New,
	}
	copy(l.tasks, tasks)
	sort.SliceStable(l.tasks, func(i, j int) bool {
		return l.tasks[i].Order < l.tasks[j].Order
	})
	l.compact()
	return l
}

// WithIDGenerator replaces the generator used for new task ids.
func (l *List) WithIDGenerator(f func() uuid.UUID) *List {
	l.newID = f
	return l
}

func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in ascending order.
func (l *List) Tasks() []entity.DailyTask {
	out := make([]entity.DailyTask, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Get(taskID uuid.UUID) (entity.DailyTask, bool) {
	i := l.indexOf(taskID)
	if i < 0 {
		return entity.DailyTask{}, false
	}
	return l.tasks[i], true
}

// Add appends a task for affirmationID. If the affirmation is already
// scheduled the existing task is returned with added == false.
func (l *List) Add(affirmationID uuid.UUID) (task entity.DailyTask, added bool) {
	for _, t := range l.tasks {
		if t.AffirmationID == affirmationID {
			return t, false
		}
	}
	task = entity.DailyTask{
		ID:            l.newID(),
		UserID:        l.userID,
		AffirmationID: affirmationID,
		Order:         len(l.tasks) + 1,
		Method:        DefaultMethod,
		IsCompleted:   false,
	}
	l.tasks = append(l.tasks, task)
	return task, true
}

func (l *List) Remove(taskID uuid.UUID) error {
	i := l.indexOf(taskID)
	if i < 0 {
		return errorvalues.ErrTaskNotFound
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.compact()
	return nil
}

// RemoveAffirmation drops every task that references affirmationID and
// returns how many were removed.
func (l *List) RemoveAffirmation(affirmationID uuid.UUID) int {
	kept := l.tasks[:0]
	removed := 0
	for _, t := range l.tasks {
		if t.AffirmationID == affirmationID {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	l.tasks = kept
	if removed > 0 {
		l.compact()
	}
	return removed
}

// Move places the task at newOrder. Tasks between the old and the new
// position shift by one toward the vacated slot; the rest keep their order.
func (l *List) Move(taskID uuid.UUID, newOrder int) error {
	i := l.indexOf(taskID)
	if i < 0 {
		return errorvalues.ErrTaskNotFound
	}
	if newOrder < 1 || newOrder > len(l.tasks) {
		return errorvalues.ErrOrderOutOfRange
	}
	oldOrder := l.tasks[i].Order
	if newOrder == oldOrder {
		return nil
	}
	for j := range l.tasks {
		t := &l.tasks[j]
		switch {
		case t.ID == taskID:
			t.Order = newOrder
		case newOrder > oldOrder && t.Order > oldOrder && t.Order <= newOrder:
			t.Order--
		case newOrder < oldOrder && t.Order >= newOrder && t.Order < oldOrder:
			t.Order++
		}
	}
	l.sortByOrder()
	return nil
}

func (l *List) SetMethod(taskID uuid.UUID, method entity.PracticeMethod) error {
	if !method.Valid() {
		return errorvalues.ErrInvalidMethod
	}
	i := l.indexOf(taskID)
	if i < 0 {
		return errorvalues.ErrTaskNotFound
	}
	l.tasks[i].Method = method
	return nil
}

// Complete marks the task done. Completing a done task is a no-op.
func (l *List) Complete(taskID uuid.UUID) error {
	i := l.indexOf(taskID)
	if i < 0 {
		return errorvalues.ErrTaskNotFound
	}
	l.tasks[i].IsCompleted = true
	return nil
}

// Next returns the incomplete task with the smallest order.
func (l *List) Next() (entity.DailyTask, bool) {
	for _, t := range l.tasks {
		if !t.IsCompleted {
			return t, true
		}
	}
	return entity.DailyTask{}, false
}

func (l *List) indexOf(taskID uuid.UUID) int {
	for i, t := range l.tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

func (l *List) sortByOrder() {
	sort.SliceStable(l.tasks, func(i, j int) bool {
		return l.tasks[i].Order < l.tasks[j].Order
	})
}

// compact renumbers tasks by their current position. Every removal path
// goes through here.
func (l *List) compact() {
	for i := range l.tasks {
		l.tasks[i].Order = i + 1
	}
}
