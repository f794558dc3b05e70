package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/platform/httpclient"
	"wolfpack/internal/ports/dialog"
	"wolfpack/internal/ports/geo"
	"wolfpack/internal/ports/nav"
	"wolfpack/internal/ports/notify"
)

var (
	akela  = wolves.Wolf{ID: 1, Name: "Akela"}
	raksha = wolves.Wolf{ID: 2, Name: "Raksha"}
	bagh   = wolves.Wolf{ID: 3, Name: "Bagheera"}
	baloo  = wolves.Wolf{ID: 4, Name: "Baloo"}
)

func seededPacks() (*fakeWolves, *fakePacks) {
	ws := newFakeWolves(akela, raksha, bagh, baloo)
	ps := newFakePacks(ws, packs.Pack{ID: 1, Name: "Seeonee", Latitude: 21.1, Longitude: 79.2, Wolves: []wolves.Wolf{akela}})
	return ws, ps
}

func TestPackList_OpenSelectsWithMembers(t *testing.T) {
	ws, ps := seededPacks()
	c := NewPackList(ps, ws, testDeps(&notify.Recorder{}))

	require.NoError(t, c.Open(context.Background(), nav.Path("/packs/1")))

	v := c.View()
	assert.Equal(t, ModeViewing, v.Mode)
	assert.True(t, v.Selected.WolvesLoaded)
	assert.Equal(t, []string{"Akela"}, wolfNames(v.Selected.Wolves))
	assert.Equal(t, PackDraft{Name: "Seeonee", Latitude: 21.1, Longitude: 79.2}, v.Draft)
}

func TestPackList_OpenCreateUsesLocator(t *testing.T) {
	ws, ps := seededPacks()
	deps := testDeps(&notify.Recorder{})
	deps.Locator = geo.Fixed{Latitude: 45.5, Longitude: -73.6}
	c := NewPackList(ps, ws, deps)

	c.OpenCreate(context.Background())

	v := c.View()
	assert.Equal(t, ModeCreating, v.Mode)
	assert.Equal(t, PackDraft{Latitude: 45.5, Longitude: -73.6}, v.Draft)
	assert.True(t, v.Selected.WolvesLoaded)
	assert.Empty(t, v.Selected.Wolves)
}

func TestPackList_OpenCreateLocatorFallback(t *testing.T) {
	ws, ps := seededPacks()
	deps := testDeps(&notify.Recorder{})
	deps.Locator = failingLocator{}
	c := NewPackList(ps, ws, deps)

	c.OpenCreate(context.Background())

	v := c.View()
	assert.Equal(t, 0.0, v.Draft.Latitude)
	assert.Equal(t, 0.0, v.Draft.Longitude)
}

func TestPackList_CreateAndSetLocation(t *testing.T) {
	ws, ps := seededPacks()
	rec := &notify.Recorder{}
	c := NewPackList(ps, ws, testDeps(rec))
	ctx := context.Background()

	assert.ErrorIs(t, c.SetLocation(1, 2), ErrNothingSelected)

	c.OpenCreate(ctx)
	require.NoError(t, c.Edit(func(d *PackDraft) { d.Name = "Waingunga" }))
	require.NoError(t, c.SetLocation(-12.5, 130.25))

	id, err := c.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Successfully created pack"}, rec.Texts())

	got := ps.byID[id]
	assert.Equal(t, "Waingunga", got.Name)
	assert.Equal(t, -12.5, got.Latitude)
	assert.Equal(t, 130.25, got.Longitude)

	v := c.View()
	assert.Equal(t, ModeViewing, v.Mode)
	assert.Equal(t, id, v.Selected.ID)
	require.Len(t, v.Items, 2)
	assert.Equal(t, "Seeonee", v.Items[0].Name)
}

func TestPackList_InvalidNameNeverCallsServer(t *testing.T) {
	ws, ps := seededPacks()
	rec := &notify.Recorder{}
	c := NewPackList(ps, ws, testDeps(rec))
	ctx := context.Background()

	require.NoError(t, c.Select(ctx, 1))
	require.NoError(t, c.Edit(func(d *PackDraft) { d.Name = "Pack 2" }))

	_, err := c.Save(ctx)
	require.Error(t, err)
	assert.Zero(t, ps.count("update"))
	assert.Equal(t, []string{"Not all fields have been filled in correctly"}, rec.Texts())
	assert.Equal(t, ModeEditing, c.View().Mode)
}

func TestPackList_RemoveMember(t *testing.T) {
	ws, ps := seededPacks()
	conf := &recordingConfirmer{answer: true}
	rec := &notify.Recorder{}
	deps := testDeps(rec)
	deps.Confirmer = conf
	c := NewPackList(ps, ws, deps)
	ctx := context.Background()

	require.NoError(t, c.Select(ctx, 1))

	removed, err := c.RemoveMember(ctx, akela.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	require.Len(t, conf.prompts, 1)
	assert.Equal(t, `Are you sure you want to remove the wolf "Akela" from the pack "Seeonee"?`, conf.prompts[0].Text)
	assert.Equal(t, []string{"Successfully removed wolf from the pack"}, rec.Texts())
	assert.Empty(t, c.View().Selected.Wolves)

	// el lobo sigue existiendo
	_, err = ws.GetByID(ctx, akela.ID)
	assert.NoError(t, err)
}

func TestPackList_RemoveMemberDeclined(t *testing.T) {
	ws, ps := seededPacks()
	c := NewPackList(ps, ws, testDeps(&notify.Recorder{}))
	ctx := context.Background()
	require.NoError(t, c.Select(ctx, 1))

	removed, err := c.RemoveMember(ctx, akela.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Zero(t, ps.count("remove"))
	assert.Len(t, c.View().Selected.Wolves, 1)
}

func TestPackList_RemoveMemberNotInPack(t *testing.T) {
	ws, ps := seededPacks()
	deps := testDeps(&notify.Recorder{})
	deps.Confirmer = dialog.Always(true)
	c := NewPackList(ps, ws, deps)
	ctx := context.Background()
	require.NoError(t, c.Select(ctx, 1))

	_, err := c.RemoveMember(ctx, raksha.ID)
	assert.ErrorIs(t, err, packs.ErrNotMember)
	assert.Zero(t, ps.count("remove"))
}

func TestPackList_AddMembersOffersOnlyNonMembers(t *testing.T) {
	ws, ps := seededPacks()
	picker := &recordingPicker{pick: []wolves.Wolf{raksha, akela, raksha}}
	rec := &notify.Recorder{}
	deps := testDeps(rec)
	deps.Picker = picker
	c := NewPackList(ps, ws, deps)
	ctx := context.Background()
	require.NoError(t, c.Select(ctx, 1))

	n, err := c.AddMembers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, "Add wolves to Seeonee", picker.req.Title)
	assert.Equal(t, []string{"Bagheera", "Baloo", "Raksha"}, wolfNames(picker.req.Candidates))

	// akela ya era miembro y raksha vino repetido: una sola llamada
	assert.Equal(t, 1, ps.count("add"))
	assert.Equal(t, []string{"Successfully added wolf to pack!"}, rec.Texts())
	assert.Equal(t, []string{"Akela", "Raksha"}, wolfNames(c.View().Selected.Wolves))
}

func TestPackList_AddMembersPartialFailure(t *testing.T) {
	ws, ps := seededPacks()
	ps.failAdd[bagh.ID] = &httpclient.TransportError{Method: "POST", StatusCode: 409, Body: "wolf already in pack"}

	picker := &recordingPicker{pick: []wolves.Wolf{raksha, bagh, baloo}}
	rec := &notify.Recorder{}
	deps := testDeps(rec)
	deps.Picker = picker
	c := NewPackList(ps, ws, deps)
	ctx := context.Background()
	require.NoError(t, c.Select(ctx, 1))

	n, err := c.AddMembers(ctx)
	assert.Equal(t, 2, n)

	var batch *BatchError
	require.True(t, errors.As(err, &batch))
	assert.Equal(t, 3, batch.Attempted)
	assert.Equal(t, 2, batch.Succeeded())
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, bagh.ID, batch.Failures[0].WolfID)
	assert.Equal(t, 409, httpclient.StatusOf(err))

	// todas las llamadas se intentaron
	assert.Equal(t, 3, ps.count("add"))
	assert.Contains(t, rec.Texts(), "wolf already in pack")
	assert.Contains(t, rec.Texts(), "Successfully added wolves to pack!")
	assert.Contains(t, rec.Texts(), "1 of 3 wolves could not be added to the pack")
	assert.Equal(t, batch.Summary(), rec.Texts()[len(rec.Texts())-1])

	v := c.View()
	assert.ElementsMatch(t, []string{"Akela", "Raksha", "Baloo"}, wolfNames(v.Selected.Wolves))
	assert.Equal(t, batch, v.Err)
}

func TestPackList_AddMembersAllFail(t *testing.T) {
	ws, ps := seededPacks()
	ps.failAdd[raksha.ID] = &httpclient.TransportError{StatusCode: 500, Body: "boom"}

	deps := testDeps(&notify.Recorder{})
	deps.Picker = &recordingPicker{pick: []wolves.Wolf{raksha}}
	c := NewPackList(ps, ws, deps)
	ctx := context.Background()
	require.NoError(t, c.Select(ctx, 1))

	n, err := c.AddMembers(ctx)
	assert.Zero(t, n)
	assert.Error(t, err)
	texts := deps.Notifier.(*notify.Recorder).Texts()
	assert.NotContains(t, texts, "Successfully added wolf to pack!")
	assert.Equal(t, []string{"boom", "1 of 1 wolf could not be added to the pack"}, texts)
}

func TestPackList_AddMembersNothingPicked(t *testing.T) {
	ws, ps := seededPacks()
	deps := testDeps(&notify.Recorder{})
	deps.Picker = dialog.Preselected(nil)
	c := NewPackList(ps, ws, deps)
	ctx := context.Background()
	require.NoError(t, c.Select(ctx, 1))

	n, err := c.AddMembers(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, ps.count("add"))
}

func TestPackList_AddMembersNeedsPersistedSelection(t *testing.T) {
	ws, ps := seededPacks()
	c := NewPackList(ps, ws, testDeps(&notify.Recorder{}))

	_, err := c.AddMembers(context.Background())
	assert.ErrorIs(t, err, ErrNothingSelected)

	c.OpenCreate(context.Background())
	_, err = c.AddMembers(context.Background())
	assert.ErrorIs(t, err, ErrNotPersisted)
}

func TestPackList_DeleteConfirmText(t *testing.T) {
	ws, ps := seededPacks()
	conf := &recordingConfirmer{answer: true}
	deps := testDeps(&notify.Recorder{})
	deps.Confirmer = conf
	c := NewPackList(ps, ws, deps)
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	deleted, err := c.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
	require.Len(t, conf.prompts, 1)
	assert.Equal(t, `Are you sure you want to permanently remove the pack "Seeonee"?`, conf.prompts[0].Text)
	assert.Empty(t, c.View().Items)

	// los lobos no se borran con la manada
	_, err = ws.GetByID(ctx, akela.ID)
	assert.NoError(t, err)
}
