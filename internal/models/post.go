package models

// Post.AccountID refers to accounts.id and is never resolved in memory.
type Post struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	Content   string `db:"content"`
	Views     int    `db:"views"`
	AccountID int64  `db:"account_id"`
}
