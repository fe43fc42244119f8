// Package repo is the Postgres persistence layer. Expected schema:
//
//	users(id serial, login unique, email, password, account_type,
//	      company_name, description)
//	calculators(id text primary key, name, category, type, formula,
//	      variables jsonb, description, is_active, created_by,
//	      created_at, updated_at)
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"Quarry/internal/registry"
)

// ErrNotFound is returned when a requested user row does not exist.
var ErrNotFound = errors.New("not found")

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
}

// Repository bundles everything the handlers persist: user accounts,
// contractor profiles and admin calculator definitions.
type Repository interface {
	CreateUser(ctx context.Context, login, email, passwordHash, accountType string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, companyName, description string) error

	registry.Store
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, passwordHash, accountType string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password, account_type) VALUES ($1, $2, $3, $4) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, passwordHash, accountType).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, string, error) {
	var (
		id          int
		hash        string
		accountType string
	)
	query := "SELECT id, password, account_type FROM users WHERE login=$1"
	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash, &accountType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", "", nil
		}
		return 0, "", "", err
	}
	return id, hash, accountType, nil
}

func (r *PostgresRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := `SELECT id, login, email, account_type,
		COALESCE(company_name, ''), COALESCE(description, '')
		FROM users WHERE id=$1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Login, &p.Email, &p.AccountType, &p.CompanyName, &p.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, companyName, description string) error {
	query := "UPDATE users SET company_name=$2, description=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, companyName, description)
	return err
}

func (r *PostgresRepository) CreateDefinition(ctx context.Context, d *registry.Definition) error {
	vars, err := json.Marshal(d.Variables)
	if err != nil {
		return err
	}
	query := `INSERT INTO calculators
		(id, name, category, type, formula, variables, description, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.ExecContext(ctx, query,
		d.ID, d.Name, d.Category, d.Type, d.Formula, vars,
		d.Description, d.IsActive, d.CreatedBy, d.CreatedAt, d.UpdatedAt)
	return err
}

func (r *PostgresRepository) GetDefinition(ctx context.Context, id string) (registry.Definition, error) {
	query := `SELECT id, name, category, type, formula, variables, description,
		is_active, created_by, created_at, updated_at
		FROM calculators WHERE id=$1`
	d, err := scanDefinition(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return registry.Definition{}, registry.ErrNotFound
	}
	return d, err
}

func (r *PostgresRepository) ListDefinitions(ctx context.Context, category string, activeOnly bool) ([]registry.Definition, error) {
	query := `SELECT id, name, category, type, formula, variables, description,
		is_active, created_by, created_at, updated_at
		FROM calculators
		WHERE ($1 = '' OR category = $1) AND (NOT $2 OR is_active)
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, category, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []registry.Definition
	for rows.Next() {
		d, err := scanDefinition(rows)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

func (r *PostgresRepository) UpdateDefinition(ctx context.Context, d *registry.Definition) error {
	vars, err := json.Marshal(d.Variables)
	if err != nil {
		return err
	}
	query := `UPDATE calculators SET
		name=$2, category=$3, type=$4, formula=$5, variables=$6,
		description=$7, is_active=$8, updated_at=$9
		WHERE id=$1`
	res, err := r.db.ExecContext(ctx, query,
		d.ID, d.Name, d.Category, d.Type, d.Formula, vars,
		d.Description, d.IsActive, d.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PostgresRepository) DeleteDefinition(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM calculators WHERE id=$1", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDefinition(row rowScanner) (registry.Definition, error) {
	var (
		d    registry.Definition
		vars []byte
	)
	err := row.Scan(&d.ID, &d.Name, &d.Category, &d.Type, &d.Formula, &vars,
		&d.Description, &d.IsActive, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return registry.Definition{}, err
	}
	if len(vars) > 0 {
		if err := json.Unmarshal(vars, &d.Variables); err != nil {
			return registry.Definition{}, err
		}
	}
	return d, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return registry.ErrNotFound
	}
	return nil
}
