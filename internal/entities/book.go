package entities

// Book is the only persisted resource. ID is zero until the store assigns one.
type Book struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"size:512" json:"title"`
	Author string `gorm:"size:256" json:"author"`
}
