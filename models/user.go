package models

// UserSummary is the lightweight projection used for author badges.
type UserSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type Company struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

// UserDetail 은 사용자 프로필 다이얼로그에 표시되는 전체 정보다.
type UserDetail struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	Image     string  `json:"image"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Age       int     `json:"age"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`
	Company   Company `json:"company"`
}
