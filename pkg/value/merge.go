package value

// ValueColumn is the column name used for rows that are not records.
const ValueColumn = "<value>"

// MergeDescriptors returns the columns of a table made of the given rows: the
// union of their descriptors in order of first appearance. A row with no
// descriptors contributes ValueColumn.
func MergeDescriptors(rows []Value) []string {
	columns := []string{}
	seen := make(map[string]struct{})
	add := func(c string) {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			columns = append(columns, c)
		}
	}
	for _, row := range rows {
		descs := row.DataDescriptors()
		if len(descs) == 0 {
			add(ValueColumn)
			continue
		}
		for _, d := range descs {
			add(d)
		}
	}
	return columns
}
