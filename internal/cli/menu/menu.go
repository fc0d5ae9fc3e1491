// Package menu is the interactive console for obra: a numbered list of
// operations read from an input stream until a blank selection.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/obra/internal/cli/styles"
	"github.com/thenoetrevino/obra/internal/models"
	projectservice "github.com/thenoetrevino/obra/internal/services/project"
)

var operations = []string{
	"1) Add a project",
	"2) List projects",
	"3) Select project",
	"4) Update project details",
	"5) Delete a project",
	"6) Add material to project",
	"7) Add step to project",
	"8) Add category to project",
}

var errNoProject = errors.New("no project selected, select one with option 3")

// Runner drives the menu loop. It keeps the currently selected project
// between operations.
type Runner struct {
	svc    projectservice.Service
	in     *bufio.Scanner
	out    io.Writer
	echo   bool
	logger *slog.Logger

	current *models.Project
}

// Option configures a Runner
type Option func(*Runner)

// WithEcho writes every line read back to the output, for non-terminal input
func WithEcho() Option {
	return func(r *Runner) {
		r.echo = true
	}
}

// WithLogger sets the logger errors are recorded to
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a menu over svc reading from in and writing to out
func NewRunner(svc projectservice.Service, in io.Reader, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Current returns the selected project, if any
func (r *Runner) Current() (models.Project, bool) {
	if r.current == nil {
		return models.Project{}, false
	}
	return *r.current, true
}

// Run prints the menu and performs selections until a blank selection or
// the end of input. Operation errors are printed and the loop continues.
// A failing input stream ends the loop with its error.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.printOperations()
		selection, ok, err := r.readInt("Enter a menu selection")
		if errors.Is(err, errEndOfInput) {
			return r.exit()
		}
		if errors.Is(err, errReadInput) {
			return err
		}
		if err != nil {
			r.printError(err)
			continue
		}
		if !ok {
			return r.exit()
		}

		err = r.dispatch(ctx, selection)
		if errors.Is(err, errEndOfInput) {
			return r.exit()
		}
		if errors.Is(err, errReadInput) {
			return err
		}
		if err != nil {
			r.printError(err)
		}
	}
}

func (r *Runner) dispatch(ctx context.Context, selection int) error {
	switch selection {
	case 1:
		return r.addProject(ctx)
	case 2:
		return r.listProjects(ctx)
	case 3:
		return r.selectProject(ctx)
	case 4:
		return r.updateProjectDetails(ctx)
	case 5:
		return r.deleteProject(ctx)
	case 6:
		return r.addMaterial(ctx)
	case 7:
		return r.addStep(ctx)
	case 8:
		return r.addCategory(ctx)
	default:
		fmt.Fprintf(r.out, "\n%d is not a valid selection. Try again.\n", selection)
		return nil
	}
}

func (r *Runner) exit() error {
	fmt.Fprintln(r.out, "\nExiting the menu.")
	return nil
}

func (r *Runner) printError(err error) {
	r.logger.Warn("menu operation failed", "error", err)
	fmt.Fprintf(r.out, "\nError: %v. Try again.\n", err)
}

func (r *Runner) printOperations() {
	fmt.Fprintln(r.out, "\nThese are the available selections. Press the Enter key to quit:")
	for _, line := range operations {
		fmt.Fprintln(r.out, "  "+line)
	}
	if r.current == nil {
		fmt.Fprintln(r.out, "\nYou are not working with a project.")
	} else {
		fmt.Fprintf(r.out, "\nYou are working with project %d: %s\n", r.current.ID, r.current.Name)
	}
}

func (r *Runner) addProject(ctx context.Context) error {
	name, ok, err := r.readString("Enter the project name")
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("project name is required")
	}
	estimated, _, err := r.readHours("Enter the estimated hours")
	if err != nil {
		return err
	}
	actual, _, err := r.readHours("Enter the actual hours")
	if err != nil {
		return err
	}
	difficulty, ok, err := r.readDifficulty("Enter the project difficulty (1-5)")
	if err != nil {
		return err
	}
	if !ok {
		difficulty = models.MinDifficulty
	}
	notes, _, err := r.readString("Enter the project notes")
	if err != nil {
		return err
	}

	project, err := r.svc.AddProject(ctx, &models.Project{
		Name:           name,
		EstimatedHours: estimated,
		ActualHours:    actual,
		Difficulty:     difficulty,
		Notes:          notes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "You have successfully created project %d: %s\n", project.ID, project.Name)
	return nil
}

func (r *Runner) listProjects(ctx context.Context) error {
	projects, err := r.svc.FetchAllProjects(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "\nProjects:")
	for _, p := range projects {
		fmt.Fprintf(r.out, "   %d: %s\n", p.ID, p.Name)
	}
	return nil
}

func (r *Runner) selectProject(ctx context.Context) error {
	if err := r.listProjects(ctx); err != nil {
		return err
	}
	id, ok, err := r.readInt("Enter a project ID to select a project")
	if err != nil || !ok {
		return err
	}

	r.current = nil
	project, err := r.svc.FetchProjectByID(ctx, id)
	if err != nil {
		return err
	}
	r.current = &project
	fmt.Fprintln(r.out, styles.RenderProject(project))
	return nil
}

func (r *Runner) updateProjectDetails(ctx context.Context) error {
	if r.current == nil {
		return errNoProject
	}
	cur := *r.current
	updated := cur

	name, ok, err := r.readString(fmt.Sprintf("Enter the project name [%s]", cur.Name))
	if err != nil {
		return err
	}
	if ok {
		updated.Name = name
	}
	if updated.EstimatedHours, err = r.keepHours(
		fmt.Sprintf("Enter the estimated hours [%s]", cur.EstimatedHours.StringFixed(models.HoursScale)), cur.EstimatedHours); err != nil {
		return err
	}
	if updated.ActualHours, err = r.keepHours(
		fmt.Sprintf("Enter the actual hours [%s]", cur.ActualHours.StringFixed(models.HoursScale)), cur.ActualHours); err != nil {
		return err
	}
	difficulty, ok, err := r.readDifficulty(fmt.Sprintf("Enter the project difficulty (1-5) [%d]", cur.Difficulty))
	if err != nil {
		return err
	}
	if ok {
		updated.Difficulty = difficulty
	}
	notes, ok, err := r.readString(fmt.Sprintf("Enter the project notes [%s]", cur.Notes))
	if err != nil {
		return err
	}
	if ok {
		updated.Notes = notes
	}

	if err := r.svc.ModifyProjectDetails(ctx, &updated); err != nil {
		return err
	}
	return r.refresh(ctx)
}

func (r *Runner) keepHours(prompt string, current decimal.Decimal) (decimal.Decimal, error) {
	d, ok, err := r.readHours(prompt)
	if err != nil {
		return current, err
	}
	if !ok {
		return current, nil
	}
	return d, nil
}

func (r *Runner) deleteProject(ctx context.Context) error {
	if err := r.listProjects(ctx); err != nil {
		return err
	}
	id, ok, err := r.readInt("Enter the ID of the project to delete")
	if err != nil || !ok {
		return err
	}
	if err := r.svc.DeleteProject(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Project %d was successfully deleted.\n", id)
	if r.current != nil && r.current.ID == id {
		r.current = nil
	}
	return nil
}

func (r *Runner) addMaterial(ctx context.Context) error {
	if r.current == nil {
		return errNoProject
	}
	name, ok, err := r.readString("Enter the material name")
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("material name is required")
	}
	count, ok, err := r.readInt("Enter the number required [1]")
	if err != nil {
		return err
	}
	if !ok {
		count = 1
	}
	cost, _, err := r.readHours("Enter the cost")
	if err != nil {
		return err
	}

	material, err := r.svc.AddMaterial(ctx, &models.Material{
		ProjectID:   r.current.ID,
		Name:        name,
		NumRequired: count,
		Cost:        cost,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Added material %d: %s\n", material.ID, material.Name)
	return r.refresh(ctx)
}

func (r *Runner) addStep(ctx context.Context) error {
	if r.current == nil {
		return errNoProject
	}
	text, ok, err := r.readString("Enter the step text")
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("step text is required")
	}

	step, err := r.svc.AddStep(ctx, &models.Step{ProjectID: r.current.ID, Text: text})
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Added step %d: %s\n", step.Order, step.Text)
	return r.refresh(ctx)
}

// addCategory assigns an existing category by ID, or creates one when the
// input is not a number
func (r *Runner) addCategory(ctx context.Context) error {
	if r.current == nil {
		return errNoProject
	}
	categories, err := r.svc.FetchCategories(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "\nCategories:")
	for _, c := range categories {
		fmt.Fprintf(r.out, "   %d: %s\n", c.ID, c.Name)
	}

	input, ok, err := r.readString("Enter a category ID or a new category name")
	if err != nil || !ok {
		return err
	}

	categoryID, convErr := strconv.Atoi(input)
	if convErr != nil {
		category, err := r.svc.AddCategory(ctx, input)
		if err != nil {
			return err
		}
		categoryID = category.ID
	}

	if err := r.svc.AssignCategory(ctx, r.current.ID, categoryID); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Category %d assigned to project %d\n", categoryID, r.current.ID)
	return r.refresh(ctx)
}

// refresh reloads the selected project so the menu shows current children
func (r *Runner) refresh(ctx context.Context) error {
	project, err := r.svc.FetchProjectByID(ctx, r.current.ID)
	if err != nil {
		r.current = nil
		return err
	}
	r.current = &project
	return nil
}
