package guard

import "slices"

const entityCategory = "category"

// Node is a category as seen by the hierarchy checks: an identity and an
// optional parent key.
type Node struct {
	ID       int
	ParentID *int
}

// Forest is an arena of categories keyed by identity.
type Forest struct {
	parents map[int]*int
}

func NewForest(nodes []Node) *Forest {
	parents := make(map[int]*int, len(nodes))
	for _, n := range nodes {
		parents[n.ID] = n.ParentID
	}
	return &Forest{parents: parents}
}

func (f *Forest) Len() int {
	return len(f.parents)
}

func (f *Forest) Exists(id int) bool {
	_, ok := f.parents[id]
	return ok
}

// ValidateCreate checks the parent of a new category.
func (f *Forest) ValidateCreate(parentID *int) error {
	if parentID == nil {
		return nil
	}
	if !f.Exists(*parentID) {
		return NotFound(entityCategory, ReasonParent, "parent category with ID %d not found", *parentID)
	}
	return nil
}

// ValidateUpdate checks re-parenting category id under parentID. A nil
// parentID makes the category a root and is always valid.
func (f *Forest) ValidateUpdate(id int, parentID *int) error {
	if parentID == nil {
		return nil
	}
	if *parentID == id {
		return InvalidOperation(entityCategory, ReasonSelfParent, "category cannot be its own parent")
	}
	if f.reaches(*parentID, id) {
		return InvalidOperation(entityCategory, ReasonCycle,
			"circular reference detected: category %d cannot be moved under its own subcategory %d", id, *parentID)
	}
	if !f.Exists(*parentID) {
		return NotFound(entityCategory, ReasonParent, "parent category with ID %d not found", *parentID)
	}
	return nil
}

// reaches walks the ancestor chain starting at from and reports whether
// target is on it. At most Len()+1 lookups are made, so a corrupted snapshot
// that already holds a cycle still terminates.
func (f *Forest) reaches(from, target int) bool {
	current := &from
	for steps := 0; current != nil && steps <= len(f.parents); steps++ {
		if *current == target {
			return true
		}
		current = f.parents[*current]
	}
	return false
}

// Ancestors returns the parent chain of id, nearest first.
func (f *Forest) Ancestors(id int) []int {
	var out []int
	current := f.parents[id]
	for current != nil && len(out) < len(f.parents) {
		out = append(out, *current)
		current = f.parents[*current]
	}
	return out
}

// Children returns the direct children of id in ascending order.
func (f *Forest) Children(id int) []int {
	var out []int
	for child, parent := range f.parents {
		if parent != nil && *parent == id {
			out = append(out, child)
		}
	}
	slices.Sort(out)
	return out
}

// Descendants returns every category below id, breadth first.
func (f *Forest) Descendants(id int) []int {
	children := make(map[int][]int, len(f.parents))
	for child, parent := range f.parents {
		if parent != nil {
			children[*parent] = append(children[*parent], child)
		}
	}

	seen := map[int]bool{id: true}
	var out []int
	queue := []int{id}
	for len(queue) > 0 {
		next := children[queue[0]]
		queue = queue[1:]
		slices.Sort(next)
		for _, c := range next {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
			queue = append(queue, c)
		}
	}
	return out
}
