package models

// Category is shared between projects through the project_category join table
type Category struct {
	ID   int
	Name string
}

func (c *Category) GetID() int {
	return c.ID
}
