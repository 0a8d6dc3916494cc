package pipeline

import "workshop/internal/core/domain/model/serviceorder"

// Bucket is one rendered column: the column configuration and its orders.
type Bucket struct {
	Column Column
	Orders []*serviceorder.ServiceOrder
}

// Partition groups orders by status into one bucket per column, in column
// order. Orders keep their input order inside a bucket. Orders whose status
// has no column are left out silently; see Unplaced.
func Partition(orders []*serviceorder.ServiceOrder, columns Columns) []Bucket {
	buckets := make([]Bucket, len(columns))
	index := make(map[serviceorder.Status]int, len(columns))
	for i, c := range columns {
		buckets[i] = Bucket{Column: c, Orders: make([]*serviceorder.ServiceOrder, 0)}
		if _, dup := index[c.Status]; !dup {
			index[c.Status] = i
		}
	}

	for _, o := range orders {
		if o == nil {
			continue
		}
		if i, ok := index[o.Status()]; ok {
			buckets[i].Orders = append(buckets[i].Orders, o)
		}
	}

	return buckets
}

// Unplaced returns the orders Partition would leave out.
func Unplaced(orders []*serviceorder.ServiceOrder, columns Columns) []*serviceorder.ServiceOrder {
	var out []*serviceorder.ServiceOrder
	for _, o := range orders {
		if o == nil {
			continue
		}
		if _, ok := columns.Lookup(o.Status()); !ok {
			out = append(out, o)
		}
	}
	return out
}
