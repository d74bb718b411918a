package store

import "slices"

// CanAccess is the single authorization gate for list-scoped
// operations: it returns the list only when it exists and userID is one
// of its members. A missing list and a list the caller does not belong
// to are indistinguishable (both return nil), so non-members cannot
// probe for list existence.
func (d *Document) CanAccess(listID, userID string) *List {
	list := d.findList(listID)
	if list == nil {
		return nil
	}
	if !slices.Contains(list.UserIDs, userID) {
		return nil
	}
	return list
}
