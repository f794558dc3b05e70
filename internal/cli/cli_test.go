package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolfpack/internal/cli"
	"wolfpack/internal/ports/auth"
	"wolfpack/internal/router"
	"wolfpack/internal/wire"
)

func newServer(t *testing.T) {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Verifier: auth.NewStaticVerifier("s3cret"),
	}))
	t.Cleanup(ts.Close)

	for _, k := range []string{"WOLFPACK_CONFIG", "WOLFPACK_FORMAT", "WOLFPACK_TIMEOUT", "WOLFPACK_RECENT_COUNT", "LOG_LEVEL", "LOG_FORMAT", "LOG_BACKEND"} {
		t.Setenv(k, "")
	}
	t.Setenv("WOLFPACK_API_URL", ts.URL)
	t.Setenv("WOLFPACK_TOKEN", "s3cret")
	t.Setenv("WOLFPACK_HOME_LAT", "21.1")
	t.Setenv("WOLFPACK_HOME_LNG", "79.2")
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func decode[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v), s)
	return v
}

func createWolf(t *testing.T, name, gender, birthday string) int {
	t.Helper()
	out, errOut, err := run(t, "--format", "json", "wolves", "create", "--name", name, "--gender", gender, "--birthday", birthday)
	require.NoError(t, err, errOut)
	assert.Contains(t, errOut, "Successfully created wolf")
	return decode[wire.WolfRecord](t, out).ID
}

func TestCLI_PackMembershipFlow(t *testing.T) {
	newServer(t)

	akela := createWolf(t, "Akela", "male", "2019-04-01")
	raksha := createWolf(t, "Raksha", "Female", "2020-01-15")

	// sin --lat/--lng la ubicación es la home configurada
	out, errOut, err := run(t, "--format", "json", "packs", "create", "--name", "Seeonee")
	require.NoError(t, err, errOut)
	pack := decode[wire.PackRecord](t, out)
	assert.Equal(t, 21.1, pack.Lat)
	assert.Equal(t, 79.2, pack.Lng)
	packID := strconv.Itoa(pack.ID)

	out, errOut, err = run(t, "--format", "json", "packs", "add-members", packID,
		"--wolf", strconv.Itoa(akela), "--wolf", strconv.Itoa(raksha))
	require.NoError(t, err, errOut)
	assert.Contains(t, errOut, "Successfully added wolves to pack!")
	pack = decode[wire.PackRecord](t, out)
	require.NotNil(t, pack.Wolves)
	assert.Len(t, *pack.Wolves, 2)

	// ya son miembros: nada que hacer
	_, errOut, err = run(t, "packs", "add-members", packID, "--wolf", strconv.Itoa(akela))
	require.NoError(t, err, errOut)
	assert.NotContains(t, errOut, "Successfully added")

	out, errOut, err = run(t, "--yes", "--format", "json", "packs", "remove-member", packID, strconv.Itoa(akela))
	require.NoError(t, err, errOut)
	assert.Contains(t, errOut, "Successfully removed wolf from the pack")
	pack = decode[wire.PackRecord](t, out)
	require.Len(t, *pack.Wolves, 1)
	assert.Equal(t, "Raksha", (*pack.Wolves)[0].Name)

	out, _, err = run(t, "--format", "json", "packs", "list")
	require.NoError(t, err)
	list := decode[[]map[string]any](t, out)
	require.Len(t, list, 1)
	_, hasWolves := list[0]["wolves"]
	assert.False(t, hasWolves)

	_, errOut, err = run(t, "--yes", "packs", "delete", packID)
	require.NoError(t, err, errOut)
	assert.Contains(t, errOut, "Successfully deleted")

	// los lobos sobreviven a la manada
	out, _, err = run(t, "--format", "json", "wolves", "list")
	require.NoError(t, err)
	assert.Len(t, decode[[]wire.WolfRecord](t, out), 2)
}

func TestCLI_WolvesListSortedAndTable(t *testing.T) {
	newServer(t)

	createWolf(t, "Zoe", "female", "2018-01-01")
	createWolf(t, "Amy", "female", "2018-01-01")
	createWolf(t, "Mo", "male", "2018-01-01")

	out, _, err := run(t, "--format", "json", "wolves", "list")
	require.NoError(t, err)
	var names []string
	for _, w := range decode[[]wire.WolfRecord](t, out) {
		names = append(names, w.Name)
	}
	assert.Equal(t, []string{"Amy", "Mo", "Zoe"}, names)

	out, _, err = run(t, "wolves", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Amy")
}

func TestCLI_InvalidWolfIsRejectedLocally(t *testing.T) {
	newServer(t)

	_, errOut, err := run(t, "wolves", "create", "--name", "Rex2", "--gender", "male", "--birthday", "2019-01-01")
	require.Error(t, err)
	assert.Contains(t, errOut, "Not all fields have been filled in correctly")
	assert.Contains(t, errOut, "name: onlyLetters")

	out, _, err := run(t, "--format", "json", "wolves", "list")
	require.NoError(t, err)
	assert.Empty(t, decode[[]wire.WolfRecord](t, out))
}

func TestCLI_UpdateOnlyChangesGivenFields(t *testing.T) {
	newServer(t)
	id := strconv.Itoa(createWolf(t, "Akela", "male", "2019-04-01"))

	out, errOut, err := run(t, "--format", "json", "wolves", "update", id, "--name", "Grey")
	require.NoError(t, err, errOut)
	assert.Contains(t, errOut, "Successfully updated")

	w := decode[wire.WolfRecord](t, out)
	assert.Equal(t, "Grey", w.Name)
	assert.Equal(t, "male", w.Gender)
	assert.Equal(t, "2019-04-01", w.Birthday)
}

func TestCLI_ServerMessageShownVerbatim(t *testing.T) {
	newServer(t)

	_, errOut, err := run(t, "wolves", "show", "999")
	require.Error(t, err)
	assert.Contains(t, errOut, "wolf not found")

	_, errOut, err = run(t, "wolves", "show", "abc")
	require.Error(t, err)
	assert.Contains(t, errOut, `invalid wolf id "abc"`)
}

func TestCLI_Dashboard(t *testing.T) {
	newServer(t)
	createWolf(t, "Akela", "male", "2019-04-01")

	out, _, err := run(t, "--format", "json", "dashboard")
	require.NoError(t, err)
	got := decode[struct {
		Wolves []wire.WolfRecord `json:"wolves"`
		Packs  []wire.PackRecord `json:"packs"`
	}](t, out)
	require.Len(t, got.Wolves, 1)
	assert.Empty(t, got.Packs)

	out, _, err = run(t, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Recent wolves")
	assert.Contains(t, out, "Recent packs")
}

func TestCLI_BadToken(t *testing.T) {
	newServer(t)
	t.Setenv("WOLFPACK_TOKEN", "nope")

	_, errOut, err := run(t, "wolves", "list")
	require.Error(t, err)
	assert.Contains(t, errOut, "unauthorized")
}

func TestCLI_UnknownFormat(t *testing.T) {
	newServer(t)

	_, errOut, err := run(t, "--format", "xml", "wolves", "list")
	require.Error(t, err)
	assert.Contains(t, errOut, `unknown format "xml"`)
}
