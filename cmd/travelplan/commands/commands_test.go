package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/cmd/travelplan/commands"
	"github.com/pkordes/travel-planner/backend/internal/domain"
)

const planJSON = `{
	"travelers": 2,
	"itinerary": [{"day": 1, "date": "2023-12-15", "activities": ["Beach"]}],
	"transportation_options": [{"type": "Train", "from": "Delhi", "to": "Goa", "estimated_price": "₹2,000"}],
	"estimated_costs": {"accommodation": "₹4000", "transportation": "₹2000", "activities": "₹1000", "food": "₹1000", "total": "₹8000"}
}`

func writePlan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(planJSON), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := commands.NewRoot()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender_WritesPDF(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "render", "--plan", writePlan(t), "--out", dir)

	require.NoError(t, err)
	path := filepath.Join(dir, "Travel_Plan_Delhi_to_Goa_2023-12-15.pdf")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestSplit_UsesPlanTravelers(t *testing.T) {
	out, err := run(t, "split", "--plan", writePlan(t))

	require.NoError(t, err)
	assert.Contains(t, out, "Per traveler (2)")
	assert.Contains(t, out, "₹2000")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "₹4000")
}

func TestSplit_TravelersFlag(t *testing.T) {
	out, err := run(t, "split", "--plan", writePlan(t), "--travelers", "4")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[0], "Per traveler (4)")
	assert.Contains(t, lines[len(lines)-1], "₹2000")
}

func TestSplit_InvalidTravelers(t *testing.T) {
	_, err := run(t, "split", "--plan", writePlan(t), "--travelers", "0")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMissingPlanFlag(t *testing.T) {
	_, err := run(t, "split")

	assert.Error(t, err)
}
