package query

import (
	"fmt"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// SelectColumns keeps the columns of the named sections plus the columns
// referenced individually, in table order. An empty selection returns t.
func SelectColumns(t *models.Table, sel models.Selection) (*models.Table, error) {
	if sel.IsEmpty() {
		return t, nil
	}

	var indexes []int
	for _, name := range sel.Sections {
		found := false
		for _, sec := range t.Sections() {
			if sec.Name == name {
				indexes = append(indexes, sec.Columns...)
				found = true
			}
		}
		if !found {
			return nil, models.NewQueryError("select", name,
				fmt.Errorf("%w: no section named %q", models.ErrUnknownColumn, name))
		}
	}
	for _, ref := range sel.Columns {
		idx, err := t.Lookup(ref)
		if err != nil {
			return nil, models.NewQueryError("select", ref.String(), err)
		}
		indexes = append(indexes, idx)
	}

	return t.Project(indexes)
}

// View filters the rows of t and then keeps the selected columns. Filters
// may reference columns outside the selection.
func View(t *models.Table, sel models.Selection, filters ...models.FilterSpec) (*models.Table, error) {
	filtered, err := ApplyFilters(t, filters...)
	if err != nil {
		return nil, err
	}
	return SelectColumns(filtered, sel)
}
