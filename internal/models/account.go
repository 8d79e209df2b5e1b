package models

type Account struct {
	ID           int64  `db:"id"`
	UserName     string `db:"user_name"`
	EmailAddress string `db:"email_address"`
}
