package model

// Book is one catalog record. The book id is the map key in the catalog and is
// not duplicated inside the record. Owner is the username of the account that
// created the record; it is informational only and never consulted for
// authorization.
type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Year      int    `json:"year"`
	Publisher string `json:"publisher"`
	Owner     string `json:"owner,omitempty"`
}

// BookPatch carries a partial update. Nil fields are left untouched; the owner
// cannot be patched.
type BookPatch struct {
	Title     *string
	Author    *string
	Year      *int
	Publisher *string
}

func (p BookPatch) IsZero() bool {
	return p.Title == nil && p.Author == nil && p.Year == nil && p.Publisher == nil
}
