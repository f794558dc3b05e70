package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/platform/httpclient"
	"wolfpack/internal/ports/dialog"
	"wolfpack/internal/ports/geo"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func notFound(path string) error {
	return &httpclient.TransportError{Method: "GET", Path: path, StatusCode: 404, Body: "not found"}
}

// fakeWolves es un wolves.Repository en memoria que cuenta llamadas.
type fakeWolves struct {
	mu    sync.Mutex
	byID  map[int]wolves.Wolf
	order []int
	seq   int
	calls map[string]int

	listErr error
}

func newFakeWolves(ws ...wolves.Wolf) *fakeWolves {
	f := &fakeWolves{byID: map[int]wolves.Wolf{}, calls: map[string]int{}}
	for _, w := range ws {
		if w.ID > f.seq {
			f.seq = w.ID
		}
		f.byID[w.ID] = w
		f.order = append(f.order, w.ID)
	}
	return f
}

func (f *fakeWolves) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeWolves) List(ctx context.Context) ([]wolves.Wolf, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["list"]++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]wolves.Wolf, 0, len(f.order))
	for _, id := range f.order {
		if w, ok := f.byID[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWolves) GetByID(ctx context.Context, id int) (wolves.Wolf, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["get"]++
	w, ok := f.byID[id]
	if !ok {
		return wolves.Wolf{}, notFound("/wolves")
	}
	return w, nil
}

func (f *fakeWolves) Create(ctx context.Context, w wolves.Wolf) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["create"]++
	f.seq++
	w.ID = f.seq
	f.byID[w.ID] = w
	f.order = append(f.order, w.ID)
	return w.ID, nil
}

func (f *fakeWolves) Update(ctx context.Context, w wolves.Wolf) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["update"]++
	if _, ok := f.byID[w.ID]; !ok {
		return notFound("/wolves")
	}
	f.byID[w.ID] = w
	return nil
}

func (f *fakeWolves) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["delete"]++
	if _, ok := f.byID[id]; !ok {
		return notFound("/wolves")
	}
	delete(f.byID, id)
	return nil
}

// fakePacks guarda manadas y membresías; failAdd fuerza el error de AddMember por wolfID.
type fakePacks struct {
	mu      sync.Mutex
	byID    map[int]packs.Pack
	members map[int][]int
	wolves  *fakeWolves
	seq     int
	calls   map[string]int

	failAdd map[int]error
	listErr error
}

func newFakePacks(ws *fakeWolves, ps ...packs.Pack) *fakePacks {
	f := &fakePacks{
		byID:    map[int]packs.Pack{},
		members: map[int][]int{},
		wolves:  ws,
		calls:   map[string]int{},
		failAdd: map[int]error{},
	}
	for _, p := range ps {
		if p.ID > f.seq {
			f.seq = p.ID
		}
		for _, w := range p.Wolves {
			f.members[p.ID] = append(f.members[p.ID], w.ID)
		}
		p.Wolves = nil
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakePacks) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakePacks) List(ctx context.Context) ([]packs.Pack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["list"]++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]packs.Pack, 0, len(f.byID))
	for i := 1; i <= f.seq; i++ {
		if p, ok := f.byID[i]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePacks) GetByID(ctx context.Context, id int) (packs.Pack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["get"]++
	p, ok := f.byID[id]
	if !ok {
		return packs.Pack{}, notFound("/packs")
	}
	p.Wolves = []wolves.Wolf{}
	for _, wid := range f.members[id] {
		p.Wolves = append(p.Wolves, f.wolves.byID[wid])
	}
	p.WolvesLoaded = true
	return p, nil
}

func (f *fakePacks) Create(ctx context.Context, p packs.Pack) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["create"]++
	f.seq++
	p.ID = f.seq
	f.byID[p.ID] = p
	return p.ID, nil
}

func (f *fakePacks) Update(ctx context.Context, p packs.Pack) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["update"]++
	if _, ok := f.byID[p.ID]; !ok {
		return notFound("/packs")
	}
	p.Wolves = nil
	f.byID[p.ID] = p
	return nil
}

func (f *fakePacks) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["delete"]++
	if _, ok := f.byID[id]; !ok {
		return notFound("/packs")
	}
	delete(f.byID, id)
	delete(f.members, id)
	return nil
}

func (f *fakePacks) AddMember(ctx context.Context, packID, wolfID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["add"]++
	if err := f.failAdd[wolfID]; err != nil {
		return err
	}
	f.members[packID] = append(f.members[packID], wolfID)
	return nil
}

func (f *fakePacks) RemoveMember(ctx context.Context, packID, wolfID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["remove"]++
	ids := f.members[packID]
	for i, id := range ids {
		if id == wolfID {
			f.members[packID] = append(ids[:i:i], ids[i+1:]...)
			return nil
		}
	}
	return &httpclient.TransportError{Method: "DELETE", StatusCode: 404, Body: "wolf not in pack"}
}

// recordingConfirmer guarda los prompts y contesta answer.
type recordingConfirmer struct {
	answer  bool
	prompts []dialog.Prompt
}

func (c *recordingConfirmer) Confirm(_ context.Context, p dialog.Prompt) (bool, error) {
	c.prompts = append(c.prompts, p)
	return c.answer, nil
}

// recordingPicker elige todos los ids pedidos (incluso los que no son candidatos).
type recordingPicker struct {
	pick []wolves.Wolf
	req  dialog.PickRequest
}

func (p *recordingPicker) PickWolves(_ context.Context, req dialog.PickRequest) ([]wolves.Wolf, error) {
	p.req = req
	return p.pick, nil
}

type failingLocator struct{}

func (failingLocator) Locate(context.Context) (geo.Point, error) {
	return geo.Point{Latitude: 99, Longitude: 99}, errors.New("permission denied")
}
