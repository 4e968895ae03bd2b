package model

// Todo is the domain model for a todo entry.
// Display order is the record's position in a Collection, not a field.
type Todo struct {
	ID        int    `json:"id" yaml:"id" toml:"id"`
	Text      string `json:"text" yaml:"text" toml:"text"`
	Completed bool   `json:"completed" yaml:"completed" toml:"completed"`
}
