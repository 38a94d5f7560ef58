package record

// Equal compares two records by value: same schema, same id, and equal field
// values, following relations into the linked records.
func Equal(a, b *Record) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.schema != b.schema || a.id != b.id || len(a.values) != len(b.values) {
		return false
	}
	for k, av := range a.values {
		bv, ok := b.values[k]
		if !ok {
			return false
		}
		al, aLinked := av.(Linked)
		bl, bLinked := bv.(Linked)
		switch {
		case aLinked && bLinked:
			if !Equal(al.Base(), bl.Base()) {
				return false
			}
		case aLinked || bLinked:
			return false
		case av != bv:
			return false
		}
	}
	return true
}
