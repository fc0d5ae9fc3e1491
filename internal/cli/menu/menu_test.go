package menu

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	projectservice "github.com/thenoetrevino/obra/internal/services/project"
	"github.com/thenoetrevino/obra/internal/testutil"
	clitest "github.com/thenoetrevino/obra/internal/testutil/cli"
)

// run feeds input to a new Runner and returns it with everything it printed
func run(t *testing.T, svc projectservice.Service, input string) (*Runner, string) {
	t.Helper()
	var out bytes.Buffer
	r := NewRunner(svc, strings.NewReader(input), &out)
	require.NoError(t, r.Run(context.Background()))
	return r, out.String()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestRun_BlankSelectionExits(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	r, out := run(t, app.ProjectService, "\n")
	assert.Contains(t, out, "1) Add a project")
	assert.Contains(t, out, "8) Add category to project")
	assert.Contains(t, out, "You are not working with a project.")
	assert.Contains(t, out, "Exiting the menu.")

	_, selected := r.Current()
	assert.False(t, selected)
}

func TestRun_EndOfInputExits(t *testing.T) {
	t.Parallel()
	db, app := clitest.SetupCLITest(t)

	// input ends in the middle of adding a project
	_, out := run(t, app.ProjectService, lines("1", "Half a project"))
	assert.Contains(t, out, "Exiting the menu.")

	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM project").Scan(&n))
	assert.Equal(t, 0, n)
}

func TestRun_InvalidInputContinues(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	_, out := run(t, app.ProjectService, lines("9", "abc", "4", "6", ""))
	assert.Contains(t, out, "9 is not a valid selection. Try again.")
	assert.Contains(t, out, "Error: abc is not a valid number. Try again.")
	assert.Contains(t, out, "Error: no project selected")
	assert.Contains(t, out, "Exiting the menu.")
}

func TestRun_AddAndListProjects(t *testing.T) {
	t.Parallel()
	db, app := clitest.SetupCLITest(t)

	_, out := run(t, app.ProjectService, lines(
		"1", "Garden shed", "40.125", "", "4", "roof first",
		"2",
		"",
	))
	assert.Contains(t, out, "You have successfully created project")
	assert.Contains(t, out, "Projects:")
	assert.Contains(t, out, ": Garden shed")

	var estimated string
	var difficulty int
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT estimated_hours, difficulty FROM project WHERE project_name = ?", "Garden shed").
		Scan(&estimated, &difficulty))
	assert.Equal(t, "40.13", estimated)
	assert.Equal(t, 4, difficulty)
}

func TestRun_AddProjectRejectsBadDifficulty(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	_, out := run(t, app.ProjectService, lines("1", "Chair", "1", "1", "7", ""))
	assert.Contains(t, out, "difficulty must be between 1 and 5")
	assert.NotContains(t, out, "successfully created")
}

func TestRun_SelectMissingProject(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	r, out := run(t, app.ProjectService, lines("3", "999", ""))
	assert.Contains(t, out, "project with ID=999 does not exist")

	_, selected := r.Current()
	assert.False(t, selected)
}

func TestRun_UpdateKeepsBlankFields(t *testing.T) {
	t.Parallel()
	db, app := clitest.SetupCLITest(t)
	id := strconv.Itoa(testutil.CreateTestProject(t, db, "Bookcase"))

	r, out := run(t, app.ProjectService, lines(
		"3", id,
		// name, estimated, actual, difficulty, notes
		"4", "", "", "2.5", "", "",
		"",
	))
	assert.Contains(t, out, "Enter the project name [Bookcase]")
	assert.Contains(t, out, "You are working with project "+id+": Bookcase")

	current, selected := r.Current()
	require.True(t, selected)
	assert.Equal(t, "Bookcase", current.Name)
	assert.Equal(t, "2.5", current.ActualHours.String())
	assert.Equal(t, "1", current.EstimatedHours.String())
	assert.Equal(t, 2, current.Difficulty)
}

func TestRun_DeleteSelectedClearsSelection(t *testing.T) {
	t.Parallel()
	db, app := clitest.SetupCLITest(t)
	id := strconv.Itoa(testutil.CreateTestProject(t, db, "Doomed"))

	r, out := run(t, app.ProjectService, lines("3", id, "5", id, ""))
	assert.Contains(t, out, "Project "+id+" was successfully deleted.")

	_, selected := r.Current()
	assert.False(t, selected)
}

func TestRun_DeleteMissingProject(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	_, out := run(t, app.ProjectService, lines("5", "31", ""))
	assert.Contains(t, out, "project with ID=31 does not exist")
}

func TestRun_AddChildren(t *testing.T) {
	t.Parallel()
	db, app := clitest.SetupCLITest(t)
	id := strconv.Itoa(testutil.CreateTestProject(t, db, "Picnic table"))
	existing := strconv.Itoa(testutil.CreateTestCategory(t, db, "Outdoor"))

	r, out := run(t, app.ProjectService, lines(
		"3", id,
		"6", "Pressure-treated 2x6", "8", "9.99",
		"7", "Cut boards",
		"7", "Assemble frame",
		"8", existing,
		"8", "Weekend",
		"",
	))
	assert.Contains(t, out, "Added material")
	assert.Contains(t, out, "Added step 2: Assemble frame")

	current, selected := r.Current()
	require.True(t, selected)
	require.Len(t, current.Materials, 1)
	assert.Equal(t, 8, current.Materials[0].NumRequired)
	assert.Equal(t, "9.99", current.Materials[0].Cost.String())
	require.Len(t, current.Steps, 2)
	assert.Equal(t, "Cut boards", current.Steps[0].Text)
	assert.Len(t, current.Categories, 2)
}

func TestRun_OversizedSelectionStops(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	var out bytes.Buffer
	input := strings.Repeat("x", 70*1024) + "\n\n"
	r := NewRunner(app.ProjectService, strings.NewReader(input), &out)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Equal(t, 1, strings.Count(out.String(), "1) Add a project"))
}

func TestRun_OversizedFieldStops(t *testing.T) {
	t.Parallel()
	db, app := clitest.SetupCLITest(t)

	var out bytes.Buffer
	input := "1\n" + strings.Repeat("n", 70*1024) + "\n\n"
	r := NewRunner(app.ProjectService, strings.NewReader(input), &out)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.Run(ctx)
	assert.ErrorIs(t, err, bufio.ErrTooLong)

	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM project").Scan(&n))
	assert.Equal(t, 0, n)
}
