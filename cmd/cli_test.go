package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/bnema/actionitems/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestItemsListShowsCatalog(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	stdout, _, err := executeCLI(t, home, "items", "list")
	require.NoError(t, err)
	stdout = stripANSI(stdout)
	assert.Contains(t, stdout, "items: 2")
	assert.Contains(t, stdout, "Flight Feather (flight_feather)")
	assert.Contains(t, stdout, "wand")
	assert.Contains(t, stdout, `+3 ticks if "sudo"`)
}

func TestItemsListJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	stdout, _, err := executeCLI(t, home, "items", "list", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"ID\": \"flight_feather\"")
	assert.Contains(t, stdout, "\"DurationSeconds\": 12")
}

func TestItemsShowUnknownItemReturnsError(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	_, _, err := executeCLI(t, home, "items", "show", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item definition not found")
}

func TestItemsAddThenShow(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home,
		"items", "add", "Blink",
		"--material", "ender_pearl",
		"--cooldown", "3",
		"--action", "say %player% blinks",
		"--action", "20:say %player% lands",
		"--effect-duration", "5",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved item blink (2 actions)")

	stdout, _, err = executeCLI(t, home, "items", "show", "blink")
	require.NoError(t, err)
	stdout = stripANSI(stdout)
	assert.Contains(t, stdout, "material: ENDER_PEARL")
	assert.Contains(t, stdout, "2. say %player% lands [+20 ticks]")
	assert.Contains(t, stdout, "expire@5s")

	_, err = os.Stat(filepath.Join(home, ".actionitems", "items.toml"))
	require.NoError(t, err)
}

func TestItemsAddRejectsInvalidDefinition(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "items", "add", "broken", "--cooldown", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid item definition")
}

func TestItemsAddRejectsMixedActionFormats(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "items", "add", "mixed", "--action", "say a", "--command", "say b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestGiveRendersStack(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	stdout, _, err := executeCLI(t, home, "give", "Steve", "FLIGHT_FEATHER")
	require.NoError(t, err)
	stdout = stripANSI(stdout)
	assert.Contains(t, stdout, "Gave flight_feather to Steve")
	assert.Contains(t, stdout, "1x FEATHER Flight Feather")
	assert.Contains(t, stdout, "tag: flight_feather")
}

func TestGiveUnknownItemReturnsError(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	_, _, err := executeCLI(t, home, "give", "Steve", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item definition not found")
}

func TestUseRunsActionsAndTimedEffect(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	stdout, _, err := executeCLI(t, home, "use", "--player", "Steve", "--item", "flight_feather", "--fast")
	require.NoError(t, err)
	stdout = stripANSI(stdout)

	assert.Contains(t, stdout, "console> say Steve takes off")
	assert.Contains(t, stdout, "console> sudo Steve spawn")
	assert.Contains(t, stdout, "[Steve] Your flight is active for 12 seconds!")
	assert.Contains(t, stdout, "[Steve] Your flight will wear off in 10 seconds!")
	assert.Contains(t, stdout, "[Steve] Your flight ends in 1...")
	assert.Contains(t, stdout, "[Steve] Your flight has worn off.")
	assert.Contains(t, stdout, "use #1 at tick 1: activated")
	assert.Contains(t, stdout, "done after 241 ticks (12.05s), effect enabled: false")
}

func TestUseCooldownBlocksSecondUse(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	stdout, _, err := executeCLI(t, home,
		"use", "--player", "Alex", "--item", "wand",
		"--times", "2", "--interval-ticks", "20", "--fast",
	)
	require.NoError(t, err)
	stdout = stripANSI(stdout)

	assert.Contains(t, stdout, "use #1 at tick 1: activated, item consumed")
	assert.Contains(t, stdout, "use #2 at tick 21: on_cooldown (4.0s left)")
	assert.Contains(t, stdout, "[Alex] You must wait 4.0 seconds before using this item again.")
}

func TestUseCreativeModeKeepsEffect(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	stdout, _, err := executeCLI(t, home,
		"use", "--player", "Steve", "--item", "flight_feather", "--mode", "creative", "--fast",
	)
	require.NoError(t, err)
	stdout = stripANSI(stdout)
	assert.Contains(t, stdout, "effect enabled: true")
	assert.NotContains(t, stdout, "has worn off")
}

func TestUseJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	stdout, _, err := executeCLI(t, home, "use", "--player", "Steve", "--item", "wand", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))

	var summary useSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	require.Len(t, summary.Activations, 1)
	assert.Equal(t, "activated", string(summary.Activations[0].Outcome))
	assert.Equal(t, []string{"say Steve waves", "sudo Steve spawn"}, summary.Dispatched)
}

func TestUseRejectsUnknownGameMode(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	_, _, err := executeCLI(t, home, "use", "--player", "Steve", "--item", "wand", "--mode", "hardcore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown game mode")
}

func TestUseRequiresPlayerFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "use", "--item", "wand")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"player\" not set")
}

func TestUseShowsWaitingSpinnerMessage(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	stdout, stderr, err := executeCLI(t, home, "use", "--player", "Steve", "--item", "wand")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Running scheduled actions")
	assert.Contains(t, stripANSI(stdout), "console> sudo Steve spawn")
}

func TestHistoryShowsRecordedActivations(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeItemsFixture(home))

	_, _, err := executeCLI(t, home,
		"use", "--player", "Alex", "--item", "wand",
		"--times", "2", "--interval-ticks", "20", "--fast",
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "history", "--player", "alex")
	require.NoError(t, err)
	stdout = stripANSI(stdout)
	assert.Contains(t, stdout, "records: 2")
	assert.Contains(t, stdout, "Alex used wand: activated")
	assert.Contains(t, stdout, "on_cooldown (4.0s left)")

	stdout, _, err = executeCLI(t, home, "history", "--player", "Steve", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", stdout)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeItemsFixture(home string) error {
	configDir := filepath.Join(home, ".actionitems")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	items := `version = 1

[[items]]
id = "flight_feather"
material = "feather"
display_name = "&bFlight Feather"
lore = ["&7Soar for a while"]
cooldown = 30
consume_on_use = false

[[items.actions]]
text = "say %player% takes off"

[[items.actions]]
text = "sudo %player% spawn"
delay_ticks = 3
delay_when_prefix = "sudo"

[items.timed_effect]
name = "flight"
duration = 12

[[items]]
id = "wand"
cooldown = 5
consume_on_use = true
commands = ["say %player% waves", "sudo %player% spawn"]
`

	return os.WriteFile(filepath.Join(configDir, "items.toml"), []byte(items), 0o644)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
