package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/obra/internal/models"
)

// Table names
const (
	categoryTable        = "category"
	materialTable        = "material"
	projectTable         = "project"
	projectCategoryTable = "project_category"
	stepTable            = "step"
)

// Operation names used for errors, logs and metric labels
const (
	OpFetchProject   = "fetch project"
	OpInsertProject  = "insert project"
	OpFetchProjects  = "fetch projects"
	OpUpdateProject  = "update project"
	OpDeleteProject  = "delete project"
	OpAddMaterial    = "add material"
	OpAddStep        = "add step"
	OpAddCategory    = "add category"
	OpFetchCategory  = "fetch categories"
	OpAssignCategory = "assign category"
)

// ProjectDao reads and writes the project aggregate. Each method runs in its
// own transaction and either commits or rolls back before returning.
type ProjectDao struct {
	db      TxBeginner
	dialect Dialect
	metrics *Metrics
	logger  *slog.Logger
}

// DaoOption configures a ProjectDao
type DaoOption func(*ProjectDao)

// WithMetrics records every transaction in m
func WithMetrics(m *Metrics) DaoOption {
	return func(d *ProjectDao) {
		d.metrics = m
	}
}

// WithLogger sets the logger used for rollbacks and commits
func WithLogger(logger *slog.Logger) DaoOption {
	return func(d *ProjectDao) {
		d.logger = logger
	}
}

// NewProjectDao creates a DAO on top of db
func NewProjectDao(db TxBeginner, dialect Dialect, opts ...DaoOption) *ProjectDao {
	d := &ProjectDao{
		db:      db,
		dialect: dialect,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *ProjectDao) q(query string) string {
	return d.dialect.Rebind(query)
}

// FetchByID loads a project together with its materials, steps and
// categories. All four queries share one transaction. found is false when
// no project has the id; on error the returned project is always the zero value.
func (d *ProjectDao) FetchByID(ctx context.Context, id int) (models.Project, bool, error) {
	var (
		project models.Project
		found   bool
	)

	err := d.inTx(ctx, OpFetchProject, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, d.q(`
			SELECT project_id, project_name, estimated_hours, actual_hours, difficulty, notes
			FROM `+projectTable+`
			WHERE project_id = ?`), id)

		p, err := scanProject(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		if p.Materials, err = d.fetchMaterialsForProject(ctx, tx, id); err != nil {
			return err
		}
		if p.Steps, err = d.fetchStepsForProject(ctx, tx, id); err != nil {
			return err
		}
		if p.Categories, err = d.fetchCategoriesForProject(ctx, tx, id); err != nil {
			return err
		}

		project, found = p, true
		return nil
	})
	if err != nil {
		return models.Project{}, false, err
	}
	return project, found, nil
}

// Insert adds a project row and sets the generated ID on project
func (d *ProjectDao) Insert(ctx context.Context, project *models.Project) (*models.Project, error) {
	var id int64
	err := d.inTx(ctx, OpInsertProject, func(tx *sql.Tx) error {
		var err error
		id, err = d.dialect.InsertID(ctx, tx, d.q(`
			INSERT INTO `+projectTable+`
			(project_name, estimated_hours, actual_hours, difficulty, notes)
			VALUES (?, ?, ?, ?, ?)`),
			"project_id",
			project.Name,
			roundHours(project.EstimatedHours),
			roundHours(project.ActualHours),
			project.Difficulty,
			nullString(project.Notes),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	project.ID = int(id)
	return project, nil
}

// FetchAll returns every project ordered by name. Child collections are left empty.
func (d *ProjectDao) FetchAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := d.inTx(ctx, OpFetchProjects, func(tx *sql.Tx) error {
		var err error
		projects, err = queryAll(ctx, tx, `
			SELECT project_id, project_name, estimated_hours, actual_hours, difficulty, notes
			FROM `+projectTable+`
			ORDER BY project_name`, func(rows *sql.Rows) (models.Project, error) {
			return scanProject(rows)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update overwrites the five mutable columns. It reports true only when
// exactly one row changed.
func (d *ProjectDao) Update(ctx context.Context, project *models.Project) (bool, error) {
	var affected int64
	err := d.inTx(ctx, OpUpdateProject, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, d.q(`
			UPDATE `+projectTable+` SET
				project_name = ?,
				estimated_hours = ?,
				actual_hours = ?,
				difficulty = ?,
				notes = ?
			WHERE project_id = ?`),
			project.Name,
			roundHours(project.EstimatedHours),
			roundHours(project.ActualHours),
			project.Difficulty,
			nullString(project.Notes),
			project.ID,
		)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// Delete removes the project row; children go with it through ON DELETE CASCADE.
// It reports true only when exactly one row was removed.
func (d *ProjectDao) Delete(ctx context.Context, id int) (bool, error) {
	var affected int64
	err := d.inTx(ctx, OpDeleteProject, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, d.q(`DELETE FROM `+projectTable+` WHERE project_id = ?`), id)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (d *ProjectDao) fetchMaterialsForProject(ctx context.Context, tx *sql.Tx, projectID int) ([]models.Material, error) {
	return queryAll(ctx, tx, d.q(`
		SELECT material_id, project_id, material_name, num_required, cost
		FROM `+materialTable+`
		WHERE project_id = ?`), scanMaterial, projectID)
}

func (d *ProjectDao) fetchStepsForProject(ctx context.Context, tx *sql.Tx, projectID int) ([]models.Step, error) {
	return queryAll(ctx, tx, d.q(`
		SELECT step_id, project_id, step_text, step_order
		FROM `+stepTable+`
		WHERE project_id = ?
		ORDER BY step_order`), scanStep, projectID)
}

func (d *ProjectDao) fetchCategoriesForProject(ctx context.Context, tx *sql.Tx, projectID int) ([]models.Category, error) {
	return queryAll(ctx, tx, d.q(`
		SELECT c.category_id, c.category_name
		FROM `+categoryTable+` c
		JOIN `+projectCategoryTable+` pc ON pc.category_id = c.category_id
		WHERE pc.project_id = ?`), scanCategory, projectID)
}

// ============================================================================
// ROW SCANNERS
// ============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var (
		p          models.Project
		estimated  decimal.NullDecimal
		actual     decimal.NullDecimal
		difficulty sql.NullInt64
		notes      sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &estimated, &actual, &difficulty, &notes); err != nil {
		return models.Project{}, err
	}
	p.EstimatedHours = nullDecimal(estimated)
	p.ActualHours = nullDecimal(actual)
	p.Difficulty = nullInt64ToInt(difficulty)
	p.Notes = NullStringToString(notes)
	return p, nil
}

func scanMaterial(rows *sql.Rows) (models.Material, error) {
	var (
		m           models.Material
		numRequired sql.NullInt64
		cost        decimal.NullDecimal
	)
	if err := rows.Scan(&m.ID, &m.ProjectID, &m.Name, &numRequired, &cost); err != nil {
		return models.Material{}, err
	}
	m.NumRequired = nullInt64ToInt(numRequired)
	m.Cost = nullDecimal(cost)
	return m, nil
}

func scanStep(rows *sql.Rows) (models.Step, error) {
	var s models.Step
	if err := rows.Scan(&s.ID, &s.ProjectID, &s.Text, &s.Order); err != nil {
		return models.Step{}, err
	}
	return s, nil
}

func scanCategory(rows *sql.Rows) (models.Category, error) {
	var c models.Category
	if err := rows.Scan(&c.ID, &c.Name); err != nil {
		return models.Category{}, err
	}
	return c, nil
}
