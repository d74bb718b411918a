package store

// User is an account record. PasswordHash and Token are secrets: the
// boundary layer must never serialize them to other users (the token is
// shown to its owner once, at signup and login).
//
// The JSON field names match the historical data files, where the hash
// was stored under "password".
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"password"`
	Token        string `json:"token"`
}

// Todo is a single entry in a list. Its ID is unique within the parent
// list, not globally.
type Todo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// List is a shared to-do list. UserIDs is the membership set: every
// entry refers to an existing User.ID, and only members may see or
// modify the list. It is never empty; the creator is added at creation
// and members cannot be removed.
type List struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Todos   []Todo   `json:"todos"`
	UserIDs []string `json:"userIds"`
}

// ListSummary is the membership-and-name view of a list, without its
// todos.
type ListSummary struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	UserIDs []string `json:"userIds"`
}

// Document is the root aggregate and the unit of persistence: every
// operation loads the whole document and mutating operations rewrite it
// whole. The JSON layout mirrors the historical data files, where lists
// live under the top-level "todos" key.
type Document struct {
	Users []User `json:"users"`
	Lists []List `json:"todos"`
}

// DefaultDocument returns an empty document for seeding a new database
// file.
func DefaultDocument() *Document {
	return &Document{Users: []User{}, Lists: []List{}}
}

func (d *Document) findUserByUsername(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) findUserByToken(token string) *User {
	for i := range d.Users {
		if d.Users[i].Token == token {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) findList(listID string) *List {
	for i := range d.Lists {
		if d.Lists[i].ID == listID {
			return &d.Lists[i]
		}
	}
	return nil
}
