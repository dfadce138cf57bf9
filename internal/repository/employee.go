package repository

import (
	"context"
	"fmt"

	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmployeeRepository persists employee rows.
//
// Uniqueness of employee_id and email is enforced by the schema (primary
// key + unique constraint), not by read-then-write checks: a duplicate
// insert surfaces as a unique violation even under concurrent requests.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository constructs an EmployeeRepository on the shared pool.
func NewEmployeeRepository(s *server.Server) *EmployeeRepository {
	return &EmployeeRepository{pool: s.DB.Pool}
}

// Create inserts a new employee row. created_at is assigned by the server
// (schema default). A duplicate employee_id or email comes back as a
// pgconn.PgError with SQLSTATE 23505 for the caller to classify.
func (r *EmployeeRepository) Create(ctx context.Context, employee model.Employee) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO employees (employee_id, full_name, email, department)
		 VALUES ($1, $2, $3, $4)`,
		employee.EmployeeID, employee.FullName, employee.Email, employee.Department,
	)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

// List returns all employees ordered by creation time, newest first.
func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT employee_id, full_name, email, department, created_at
		 FROM employees
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	employees := make([]model.Employee, 0)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.EmployeeID, &e.FullName, &e.Email, &e.Department, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee rows: %w", err)
	}

	return employees, nil
}

// GetByID returns the employee with the given business key.
// A missing row surfaces as pgx.ErrNoRows.
func (r *EmployeeRepository) GetByID(ctx context.Context, employeeID string) (model.Employee, error) {
	var e model.Employee
	err := r.pool.QueryRow(ctx,
		`SELECT employee_id, full_name, email, department, created_at
		 FROM employees
		 WHERE employee_id = $1`,
		employeeID,
	).Scan(&e.EmployeeID, &e.FullName, &e.Email, &e.Department, &e.CreatedAt)
	if err != nil {
		return model.Employee{}, fmt.Errorf("fetching employee: %w", err)
	}
	return e, nil
}

// Exists reports whether an employee with the given business key exists.
func (r *EmployeeRepository) Exists(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = $1)`,
		employeeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking employee existence: %w", err)
	}
	return exists, nil
}

// Delete removes an employee and all of its attendance rows in a single
// transaction: both deletions succeed or neither does. The deferred
// rollback is a no-op after a successful commit, so the transaction is
// released on every exit path.
//
// Returns pgx.ErrNoRows when no employee row matched.
func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM attendance WHERE employee_id = $1`, employeeID,
	); err != nil {
		return fmt.Errorf("deleting attendance rows: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM employees WHERE employee_id = $1`, employeeID,
	)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing delete transaction: %w", err)
	}
	return nil
}
