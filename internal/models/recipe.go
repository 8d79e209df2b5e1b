package models

type Recipe struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	CookingTime int    `db:"cooking_time"`
	Rating      int    `db:"rating"`
}
