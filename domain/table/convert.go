package table

// ConvToCatgType retags the named columns as categorical in place and returns
// t. Cell values are left as they are. Nothing is changed if any name is unknown.
func ConvToCatgType(t *Table, names []string) (*Table, error) {
	targets := make([]*Column, 0, len(names))
	for _, name := range names {
		c, err := t.lookup(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, c)
	}
	for _, c := range targets {
		c.Type = Categorical
	}
	return t, nil
}
