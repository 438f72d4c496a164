// Package lookup demonstrates how signaling "not found" and "bad input"
// evolved across Go releases, from sentinel comparisons to joined error
// trees.
package lookup

import "fmt"

// User is a directory entry.
type User struct {
	ID    int
	Name  string
	Email string
}

func (u User) String() string {
	return fmt.Sprintf("%s <%s>", u.Name, u.Email)
}

// Directory is the in-memory user store every rendition queries.
type Directory struct {
	users map[int]User
}

// NewDirectory returns a directory seeded with the demo users.
func NewDirectory() *Directory {
	return &Directory{users: map[int]User{
		1: {ID: 1, Name: "Alice", Email: "alice@example.com"},
		2: {ID: 2, Name: "Bob", Email: "bob@example.com"},
		3: {ID: 3, Name: "Charlie", Email: "charlie@example.com"},
	}}
}
