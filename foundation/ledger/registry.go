package ledger

import (
	"sort"
	"sync"
)

// Registry maintains the set of students known to the classroom. Awards and
// transfers are gated on membership. Students are only ever added within a
// session, never removed.
type Registry struct {
	mu  sync.RWMutex
	set map[string]struct{}
}

// NewRegistry constructs a registry to manage student membership.
func NewRegistry() *Registry {
	return &Registry{
		set: make(map[string]struct{}),
	}
}

// Add adds a new student to the set. It reports whether the student was not
// already present.
func (r *Registry) Add(student string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.set[student]
	if !exists {
		r.set[student] = struct{}{}
		return true
	}

	return false
}

// Exists validates the specified student is a member of the registry.
func (r *Registry) Exists(student string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.set[student]
	return exists
}

// Copy returns a sorted list of the registered students.
func (r *Registry) Copy() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	students := make([]string, 0, len(r.set))
	for student := range r.set {
		students = append(students, student)
	}
	sort.Strings(students)

	return students
}
