package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/modelrepos.git/internal/models"
)

type AccountR struct {
	db QueryI
}

func NewAccountRepository(db QueryI) *AccountR {
	return &AccountR{db: db}
}

func (a *AccountR) All(ctx context.Context) ([]models.Account, error) {
	query := `SELECT id, user_name, email_address FROM accounts ORDER BY id;`

	accounts := make([]models.Account, 0)
	if err := a.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

func (a *AccountR) Find(ctx context.Context, id int64) (models.Account, error) {
	query := `SELECT id, user_name, email_address FROM accounts WHERE id = $1;`

	var account models.Account
	if err := a.db.GetContext(ctx, &account, query, id); err != nil {
		return models.Account{}, notFound(err, "account", id)
	}

	return account, nil
}

// Create inserts every column but id. The assigned id is not read back.
func (a *AccountR) Create(ctx context.Context, account models.Account) error {
	query := `INSERT INTO accounts (user_name, email_address)
		VALUES (:user_name, :email_address);`

	if _, err := a.db.NamedExecContext(ctx, query, account); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (a *AccountR) Update(ctx context.Context, account models.Account) error {
	query := `UPDATE accounts
		SET user_name = :user_name, email_address = :email_address
		WHERE id = :id;`

	if _, err := a.db.NamedExecContext(ctx, query, account); err != nil {
		return fmt.Errorf("failed to update account %d: %w", account.ID, err)
	}

	return nil
}

func (a *AccountR) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM accounts WHERE id = $1;`

	if _, err := a.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}

	return nil
}
