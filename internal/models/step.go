package models

// Step is one instruction in a project, ordered by Order within the project
type Step struct {
	ID        int
	ProjectID int
	Text      string
	Order     int
}

func (s *Step) GetID() int {
	return s.ID
}
