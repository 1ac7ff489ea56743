package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stitchworks/trim_inventory_app/internal/apperrors"
	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	portsrepo "github.com/stitchworks/trim_inventory_app/internal/core/ports/repositories"
	"github.com/stitchworks/trim_inventory_app/internal/models"
)

const materialColumns = "id, material_code, name, quantity, rack_id, bin_number, last_updated"

type PgxMaterialRepository struct {
	BaseRepository
}

// newPgxMaterialRepository creates a new repository for material data.
func newPgxMaterialRepository(pool *pgxpool.Pool) portsrepo.MaterialRepositoryFacade {
	return &PgxMaterialRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMaterialRepository implements portsrepo.MaterialRepositoryFacade
var _ portsrepo.MaterialRepositoryFacade = (*PgxMaterialRepository)(nil)

// Helper to convert models.Material from DB to domain.Material
func toDomainMaterial(m models.Material) domain.Material {
	return domain.Material{
		ID:           m.ID,
		MaterialCode: m.MaterialCode,
		Name:         m.Name,
		Quantity:     m.Quantity,
		RackID:       m.RackID,
		BinNumber:    m.BinNumber,
		LastUpdated:  m.LastUpdated,
	}
}

// scanMaterial reads one materials row in materialColumns order.
func scanMaterial(row pgx.Row) (*domain.Material, error) {
	var modelMat models.Material
	var name sql.NullString

	err := row.Scan(
		&modelMat.ID,
		&modelMat.MaterialCode,
		&name,
		&modelMat.Quantity,
		&modelMat.RackID,
		&modelMat.BinNumber,
		&modelMat.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	if name.Valid {
		modelMat.Name = name.String
	}

	domainMat := toDomainMaterial(modelMat)
	return &domainMat, nil
}

// ListMaterials retrieves all materials, most recently updated first,
// optionally filtered by a case-insensitive substring match.
func (r *PgxMaterialRepository) ListMaterials(ctx context.Context, search string) ([]domain.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials
		ORDER BY last_updated DESC;
	`
	args := []any{}
	if search != "" {
		query = `
			SELECT ` + materialColumns + `
			FROM materials
			WHERE material_code ILIKE $1 OR name ILIKE $1 OR rack_id ILIKE $1
			ORDER BY last_updated DESC;
		`
		args = append(args, "%"+search+"%")
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	materials := []domain.Material{}
	for rows.Next() {
		mat, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material row: %w", err)
		}
		materials = append(materials, *mat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating material rows: %w", err)
	}

	return materials, nil
}

// FindMaterialByCode retrieves a material by its business code.
func (r *PgxMaterialRepository) FindMaterialByCode(ctx context.Context, code string) (*domain.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials
		WHERE material_code = $1;
	`
	mat, err := scanMaterial(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find material by code %s: %w", code, err)
	}
	return mat, nil
}

// FindMaterialByID retrieves a material by its surrogate id.
func (r *PgxMaterialRepository) FindMaterialByID(ctx context.Context, id int64) (*domain.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials
		WHERE id = $1;
	`
	mat, err := scanMaterial(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find material by id %d: %w", id, err)
	}
	return mat, nil
}

// SaveMaterial inserts a new material.
func (r *PgxMaterialRepository) SaveMaterial(ctx context.Context, material domain.Material) (*domain.Material, error) {
	return insertMaterial(ctx, r.Pool, material)
}

// InsertMaterialInTx inserts a new material within an existing transaction.
func (r *PgxMaterialRepository) InsertMaterialInTx(ctx context.Context, tx pgx.Tx, material domain.Material) (*domain.Material, error) {
	return insertMaterial(ctx, tx, material)
}

// querier is the subset of pgx shared by pools and transactions.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertMaterial(ctx context.Context, q querier, material domain.Material) (*domain.Material, error) {
	query := `
		INSERT INTO materials (material_code, name, quantity, rack_id, bin_number, last_updated)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING ` + materialColumns + `;
	`
	var name sql.NullString
	if material.Name != "" {
		name = sql.NullString{String: material.Name, Valid: true}
	}

	mat, err := scanMaterial(q.QueryRow(ctx, query,
		material.MaterialCode,
		name,
		material.Quantity,
		material.RackID,
		material.BinNumber,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return nil, fmt.Errorf("%w: material with code %s already exists", apperrors.ErrDuplicate, material.MaterialCode)
		}
		return nil, fmt.Errorf("failed to save material %s: %w", material.MaterialCode, err)
	}
	return mat, nil
}

// UpdateMaterial applies the given partial fields, always refreshing
// last_updated.
func (r *PgxMaterialRepository) UpdateMaterial(ctx context.Context, id int64, updates domain.MaterialUpdate) (*domain.Material, error) {
	setClauses := []string{}
	args := []any{id}

	addClause := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(len(args)))
	}

	if updates.Name != nil {
		addClause("name", *updates.Name)
	}
	if updates.Quantity != nil {
		addClause("quantity", *updates.Quantity)
	}
	if updates.RackID != nil {
		addClause("rack_id", *updates.RackID)
	}
	if updates.BinNumber != nil {
		addClause("bin_number", *updates.BinNumber)
	}
	setClauses = append(setClauses, "last_updated = now()")

	query := `
		UPDATE materials
		SET ` + strings.Join(setClauses, ", ") + `
		WHERE id = $1
		RETURNING ` + materialColumns + `;
	`

	mat, err := scanMaterial(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update material %d: %w", id, err)
	}
	return mat, nil
}

// DeleteMaterial removes a material. Part of the storage contract; no route
// exercises it.
func (r *PgxMaterialRepository) DeleteMaterial(ctx context.Context, id int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM materials WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete material %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindMaterialByCodeForUpdate retrieves a material by code and locks its row
// until the surrounding transaction ends.
func (r *PgxMaterialRepository) FindMaterialByCodeForUpdate(ctx context.Context, tx pgx.Tx, code string) (*domain.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials
		WHERE material_code = $1
		FOR UPDATE;
	`
	mat, err := scanMaterial(tx.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock material %s for update: %w", code, err)
	}
	return mat, nil
}

// AddQuantityInTx increases a material's balance, optionally overwriting the
// stored location with the entry's location.
func (r *PgxMaterialRepository) AddQuantityInTx(ctx context.Context, tx pgx.Tx, id int64, quantity int64, rackID, binNumber *string, now time.Time) (*domain.Material, error) {
	query := `
		UPDATE materials
		SET quantity = quantity + $2,
			rack_id = COALESCE($3, rack_id),
			bin_number = COALESCE($4, bin_number),
			last_updated = $5
		WHERE id = $1
		RETURNING ` + materialColumns + `;
	`
	mat, err := scanMaterial(tx.QueryRow(ctx, query, id, quantity, rackID, binNumber, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to add quantity to material %d: %w", id, err)
	}
	return mat, nil
}

// DeductQuantityInTx decreases a material's balance. The WHERE clause
// re-checks the balance so quantity can never go below zero, even if a
// caller skipped the row lock.
func (r *PgxMaterialRepository) DeductQuantityInTx(ctx context.Context, tx pgx.Tx, id int64, quantity int64, now time.Time) (*domain.Material, error) {
	query := `
		UPDATE materials
		SET quantity = quantity - $2, last_updated = $3
		WHERE id = $1 AND quantity >= $2
		RETURNING ` + materialColumns + `;
	`
	mat, err := scanMaterial(tx.QueryRow(ctx, query, id, quantity, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the row vanished or the balance cannot cover the
			// deduction. Distinguish for the caller.
			if _, findErr := r.findMaterialByIDInTx(ctx, tx, id); errors.Is(findErr, apperrors.ErrNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to deduct quantity from material %d: %w", id, err)
	}
	return mat, nil
}

func (r *PgxMaterialRepository) findMaterialByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (*domain.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials
		WHERE id = $1;
	`
	mat, err := scanMaterial(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return mat, nil
}
