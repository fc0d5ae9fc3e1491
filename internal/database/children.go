package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/obra/internal/models"
)

// AddMaterial inserts a material for material.ProjectID and sets its ID
func (d *ProjectDao) AddMaterial(ctx context.Context, material *models.Material) (*models.Material, error) {
	var id int64
	err := d.inTx(ctx, OpAddMaterial, func(tx *sql.Tx) error {
		var err error
		id, err = d.dialect.InsertID(ctx, tx, d.q(`
			INSERT INTO `+materialTable+`
			(project_id, material_name, num_required, cost)
			VALUES (?, ?, ?, ?)`),
			"material_id",
			material.ProjectID,
			material.Name,
			material.NumRequired,
			roundHours(material.Cost),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	material.ID = int(id)
	return material, nil
}

// AddStep inserts a step. A zero Order appends the step after the
// project's current last step; the lookup and insert share one transaction.
func (d *ProjectDao) AddStep(ctx context.Context, step *models.Step) (*models.Step, error) {
	var id int64
	order := step.Order
	err := d.inTx(ctx, OpAddStep, func(tx *sql.Tx) error {
		if order == 0 {
			var last int
			err := tx.QueryRowContext(ctx, d.q(`
				SELECT COALESCE(MAX(step_order), 0)
				FROM `+stepTable+`
				WHERE project_id = ?`), step.ProjectID).Scan(&last)
			if err != nil {
				return err
			}
			order = last + 1
		}

		var err error
		id, err = d.dialect.InsertID(ctx, tx, d.q(`
			INSERT INTO `+stepTable+`
			(project_id, step_text, step_order)
			VALUES (?, ?, ?)`),
			"step_id",
			step.ProjectID,
			step.Text,
			order,
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	step.ID = int(id)
	step.Order = order
	return step, nil
}

// AddCategory creates a category that any project can be assigned to
func (d *ProjectDao) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	var id int64
	err := d.inTx(ctx, OpAddCategory, func(tx *sql.Tx) error {
		var err error
		id, err = d.dialect.InsertID(ctx, tx,
			d.q(`INSERT INTO `+categoryTable+` (category_name) VALUES (?)`),
			"category_id", name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &models.Category{ID: int(id), Name: name}, nil
}

// FetchAllCategories returns every category ordered by name
func (d *ProjectDao) FetchAllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := d.inTx(ctx, OpFetchCategory, func(tx *sql.Tx) error {
		var err error
		categories, err = queryAll(ctx, tx, `
			SELECT category_id, category_name
			FROM `+categoryTable+`
			ORDER BY category_name`, scanCategory)
		return err
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// AssignCategory links a category to a project. It reports false when the
// link already exists.
func (d *ProjectDao) AssignCategory(ctx context.Context, projectID, categoryID int) (bool, error) {
	var inserted bool
	err := d.inTx(ctx, OpAssignCategory, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, d.q(`
			SELECT COUNT(*)
			FROM `+projectCategoryTable+`
			WHERE project_id = ? AND category_id = ?`), projectID, categoryID).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx, d.q(`
			INSERT INTO `+projectCategoryTable+` (project_id, category_id)
			VALUES (?, ?)`), projectID, categoryID)
		if err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}
