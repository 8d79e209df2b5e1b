package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DanRulev/modelrepos.git/internal/models"
	mock_repository "github.com/DanRulev/modelrepos.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *AccountR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &AccountR{db: db}
}

var seededAccounts = []models.Account{
	{ID: 1, UserName: "user123", EmailAddress: "hello@hello.co.uk"},
	{ID: 2, UserName: "user456", EmailAddress: "bye@bye.co.uk"},
}

func TestAccountR_All(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.Account
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&[]models.Account{}),
					queryHas("SELECT id, user_name, email_address FROM accounts")).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						slice := dest.(*[]models.Account)
						*slice = append(*slice, seededAccounts...)
						return nil
					})
			},
			want: seededAccounts,
		},
		{
			name: "empty table",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			want: []models.Account{},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newAccountMock(t, ctrl, tt.f)

			got, err := repo.All(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountR_Find(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      int64
		f       func(*mock_repository.MockQueryI)
		want    models.Account
		wantErr error
	}{
		{
			name: "success",
			id:   2,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&models.Account{}),
					queryHas("FROM accounts WHERE id = $1"), int64(2)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.Account) = seededAccounts[1]
						return nil
					})
			},
			want: seededAccounts[1],
		},
		{
			name: "not found",
			id:   7,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(7)).Return(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "db error",
			id:   1,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).Return(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newAccountMock(t, ctrl, tt.f)

			got, err := repo.Find(context.Background(), tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountR_Create(t *testing.T) {
	t.Parallel()

	account := models.Account{UserName: "user789", EmailAddress: "hola@hola.co.uk"}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().NamedExecContext(gomock.Any(), queryHas("INSERT INTO accounts (user_name, email_address)"), account).
					DoAndReturn(func(ctx context.Context, query string, arg interface{}) (sql.Result, error) {
						_, args, err := sqlx.Named(query, arg)
						if err != nil {
							return nil, err
						}
						assert.Equal(t, []interface{}{"user789", "hola@hola.co.uk"}, args)
						return nil, nil
					})
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().NamedExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("unique violation"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newAccountMock(t, ctrl, tt.f)

			err := repo.Create(context.Background(), account)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAccountR_Update(t *testing.T) {
	t.Parallel()

	account := models.Account{ID: 1, UserName: "user111", EmailAddress: "hellohello@hello.co.uk"}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().NamedExecContext(gomock.Any(), queryHas("UPDATE accounts", "WHERE id = :id"), account).
					DoAndReturn(func(ctx context.Context, query string, arg interface{}) (sql.Result, error) {
						_, args, err := sqlx.Named(query, arg)
						if err != nil {
							return nil, err
						}
						assert.Equal(t, []interface{}{"user111", "hellohello@hello.co.uk", int64(1)}, args)
						return nil, nil
					})
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().NamedExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newAccountMock(t, ctrl, tt.f)

			err := repo.Update(context.Background(), account)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAccountR_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      int64
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			id:   1,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), queryHas("DELETE FROM accounts WHERE id = $1"), int64(1)).Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			id:   1,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(1)).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newAccountMock(t, ctrl, tt.f)

			err := repo.Delete(context.Background(), tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
