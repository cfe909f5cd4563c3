package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-manual-options/logger"
	"github.com/goliatone/go-manual-options/options"
)

func rowNames(table *options.Table) []string {
	var names []string
	for _, row := range table.Rows() {
		names = append(names, row.Name)
	}
	return names
}

func testSettings(dir string) Settings {
	s := DefaultSettings()
	s.DataDir = dir
	return s
}

func TestLoadJSON(t *testing.T) {
	ld := New(testSettings(filepath.Join("testdata", "json")), WithLogger(logger.Nop{}))

	src, err := ld.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, src.DeathLink)
	assert.True(t, src.HasTraps)
	assert.Equal(t, []string{"Defeat the Boss", "Collect Everything"}, src.VictoryNames)
	assert.Equal(t, []options.Record{
		{Name: "starting_items[0]", YAMLOptions: []string{"!start_sword"}},
	}, src.StartingItems)

	require.Len(t, src.Categories, 3)
	assert.Equal(t, "Weapons", src.Categories[0].Name)
	assert.Equal(t, []string{"weapons"}, src.Categories[0].YAMLOptions)
	assert.Equal(t, "Bosses", src.Categories[1].Name)
	assert.Equal(t, []string{"!hardmode"}, src.Categories[1].YAMLOptions)
	assert.Equal(t, "Chests", src.Categories[2].Name)
	assert.Empty(t, src.Categories[2].YAMLOptions)

	require.NotNil(t, src.Options)
	assert.Equal(t, []string{"zeta", "goal", "speed", "intro", "_old"}, rowNames(src.Options))
}

func TestLoadJSONResolvesReferences(t *testing.T) {
	ld := New(testSettings(filepath.Join("testdata", "json")), WithLogger(logger.Nop{}))
	src, err := ld.Load(context.Background())
	require.NoError(t, err)

	fields := map[string]map[string]any{}
	for _, row := range src.Options.Rows() {
		fields[row.Name] = row.Fields
	}
	assert.Equal(t, "Demo toggle", fields["zeta"]["description"])
	assert.EqualValues(t, 3, fields["speed"]["default"])
	assert.Equal(t, "Read me first.", fields["intro"]["description"])
}

func TestLoadWithoutResolve(t *testing.T) {
	settings := testSettings(filepath.Join("testdata", "json"))
	settings.Resolve = false

	src, err := New(settings, WithLogger(logger.Nop{})).Load(context.Background())
	require.NoError(t, err)

	for _, row := range src.Options.Rows() {
		if row.Name == "zeta" {
			assert.Equal(t, "${game.game} toggle", row.Fields["description"])
		}
	}
}

func TestLoadCompiles(t *testing.T) {
	src, err := New(testSettings(filepath.Join("testdata", "json")), WithLogger(logger.Nop{})).
		Load(context.Background())
	require.NoError(t, err)

	schema, err := options.New(options.WithLogger(logger.Nop{})).Compile(src)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start_inventory_from_pool", "goal", "filler_traps", "death_link",
		"zeta", "speed", "intro", "weapons", "hardmode", "start_sword",
	}, schema.Names())

	goal, ok := schema.Option("goal")
	require.True(t, ok)
	assert.Equal(t, map[string]int{
		"option_Defeat the Boss":    0,
		"option_Collect Everything": 1,
		"alias_win":                 0,
	}, goal.Choices)

	speed, _ := schema.Option("speed")
	assert.Equal(t, options.KindNamedRange, speed.Kind)
	assert.Equal(t, 3, speed.Default)
	assert.Equal(t, map[string]int{"slow": 1, "fast": 5, "default": 3}, speed.SpecialRangeNames)

	groups, err := schema.BuildGroups()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"speed", "intro"}, groups[0].OptionNames())
	assert.Equal(t, options.ItemLocationGroup, groups[1].Name)
}

func TestLoadYAMLKeepsOrder(t *testing.T) {
	settings := testSettings(filepath.Join("testdata", "yaml"))
	settings.Options = "options.yaml"
	settings.Categories = "categories.yaml"
	settings.Locations = "locations.yaml"

	src, err := New(settings, WithLogger(logger.Nop{})).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha"}, rowNames(src.Options))
	require.Len(t, src.Categories, 2)
	assert.Equal(t, "Zebras", src.Categories[0].Name)
	assert.Equal(t, "Apes", src.Categories[1].Name)
	assert.Equal(t, []string{"Only Goal"}, src.VictoryNames)
	assert.False(t, src.DeathLink)
	assert.False(t, src.HasTraps)
}

func TestLoadTOMLSortsKeys(t *testing.T) {
	settings := testSettings(filepath.Join("testdata", "toml"))
	settings.Options = "options.toml"

	src, err := New(settings, WithLogger(logger.Nop{})).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, rowNames(src.Options))
}

func TestLoadMissingFilesAreSkipped(t *testing.T) {
	src, err := New(testSettings(t.TempDir()), WithLogger(logger.Nop{})).Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, src.Options)
	assert.Empty(t, src.Categories)
	assert.Empty(t, src.VictoryNames)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadRejectsDelimitedKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "options.json", `{"data":{"speed":{"values":{"1.5x":1}}}}`)

	_, err := New(testSettings(dir), WithLogger(logger.Nop{})).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyDelimiter)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, filepath.Join(dir, "options.json"), loadErr.File)
}

func TestLoadErrors(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "options.json", `{"data":`)
		_, err := New(testSettings(dir), WithLogger(logger.Nop{})).Load(context.Background())
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("format", func(t *testing.T) {
		settings := testSettings(t.TempDir())
		settings.Options = "options.ini"
		_, err := New(settings, WithLogger(logger.Nop{})).Load(context.Background())
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("entry shape", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "options.json", `{"data":{"speed":"fast"}}`)
		_, err := New(testSettings(dir), WithLogger(logger.Nop{})).Load(context.Background())
		assert.ErrorIs(t, err, ErrExtract)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(testSettings(filepath.Join("testdata", "json")), WithLogger(logger.Nop{})).Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
