package form

import "reflect"

const (
	// ReviewTaskID is the check-your-answers task. Its stored entry is a
	// summary over every other task and is removed whenever they change.
	ReviewTaskID = "check-your-answers"
	// ReviewPageID is the review task's only page.
	ReviewPageID = "review"
)

// SaveResult reports what a save did to the answer store.
type SaveResult struct {
	// Changed is true when the stored body differs from the previous one.
	Changed bool
	// Invalidated is true when the change removed the stored review.
	Invalidated bool
}

// Save writes body for the page, keeping only the fields the page owns.
// When the stored body changed and the page is not part of the review
// task, the review task's entry is removed from the store entirely.
func (a Answers) Save(def PageDefinition, body Body) SaveResult {
	filtered := def.Filter(body.Clone())

	previous, existed := a.Get(def.taskID, def.id)

	if a[def.taskID] == nil {
		a[def.taskID] = make(map[string]Body)
	}
	a[def.taskID][def.id] = filtered

	var res SaveResult
	res.Changed = !existed || !ShallowEqual(previous, filtered)
	if res.Changed && def.taskID != ReviewTaskID {
		if _, ok := a[ReviewTaskID]; ok {
			delete(a, ReviewTaskID)
			res.Invalidated = true
		}
	}
	return res
}

// ShallowEqual compares two bodies one level deep: the same keys, and for
// each key either equal scalars or lists of the same length with pairwise
// equal elements. Nested records are compared by identity, not content.
func ShallowEqual(a, b Body) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !shallowValueEqual(av, bv) {
			return false
		}
	}
	return true
}

func shallowValueEqual(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	aList := av.Kind() == reflect.Slice || av.Kind() == reflect.Array
	bList := bv.Kind() == reflect.Slice || bv.Kind() == reflect.Array
	if aList || bList {
		if !aList || !bList || av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			if !scalarEqual(av.Index(i).Interface(), bv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	return scalarEqual(a, b)
}

func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	// Maps and nested lists are not compared by content.
	switch ta.Kind() {
	case reflect.Map, reflect.Slice:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	default:
		return false
	}
}
