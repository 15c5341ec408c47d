package domain

type Client struct {
	ID    uint
	Name  string
	Email string
	Phone string
}
