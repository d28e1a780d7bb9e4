package layout

// CapacityPolicy returns how many layer records fit on the given 1-based
// page. Capacities may differ between pages, a denser first page is a
// layout choice the composer supports directly.
type CapacityPolicy func(page int) int

// UniformCapacity returns a policy putting n records on every page.
func UniformCapacity(n int) CapacityPolicy {
	return func(int) int { return n }
}

// FrontLoadedCapacity returns a policy with a distinct first-page capacity.
func FrontLoadedCapacity(first, rest int) CapacityPolicy {
	return func(page int) int {
		if page == 1 {
			return first
		}
		return rest
	}
}

// DefaultCapacity is four layer blocks per page.
var DefaultCapacity = UniformCapacity(4)

// Page is one rendered page of layer records.
type Page struct {
	Index  int // 1-based
	Total  int // total page count
	Layers []LayerRecord
}

// Paginate partitions records into consecutive pages under the capacity
// policy. Input order is preserved exactly, no record is split across pages
// or dropped, and the same input and policy always produce the same
// grouping. A non-positive capacity is treated as one record per page.
func Paginate(records []LayerRecord, policy CapacityPolicy) []Page {
	if policy == nil {
		policy = DefaultCapacity
	}
	var pages []Page
	for start := 0; start < len(records); {
		capacity := policy(len(pages) + 1)
		if capacity < 1 {
			capacity = 1
		}
		end := start + capacity
		if end > len(records) {
			end = len(records)
		}
		pages = append(pages, Page{Index: len(pages) + 1, Layers: records[start:end]})
		start = end
	}
	for i := range pages {
		pages[i].Total = len(pages)
	}
	return pages
}
