package registry

import (
	"testing"

	"github.com/vovakirdan/retropix/internal/canvas"
	"github.com/vovakirdan/retropix/internal/engine"
)

type stubScene struct {
	engine.BaseScene
	id    string
	title string
}

func (s *stubScene) ID() string                           { return s.id }
func (s *stubScene) Title() string                        { return s.title }
func (s *stubScene) Update(dt float64, fb *canvas.Canvas) {}
func (s *stubScene) Draw(fb *canvas.Canvas)               {}

func stubFactory(id, title string) Factory {
	return func() engine.Scene {
		return &stubScene{id: id, title: title}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-zeta", stubFactory("test-zeta", "Zeta"))
	Register("test-alpha", stubFactory("test-alpha", "Alpha"))

	s, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.ID() != "test-alpha" {
		t.Errorf("created scene ID = %q, expected %q", s.ID(), "test-alpha")
	}

	// Each Create returns a fresh instance.
	s2, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if s == s2 {
		t.Error("Create returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-scene"); err == nil {
		t.Error("Create with unknown ID expected error, got none")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", stubFactory("test-dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register expected panic, got none")
		}
	}()
	Register("test-dup", stubFactory("test-dup", "Dup"))
}

func TestListSortedWithTitles(t *testing.T) {
	Register("test-bbb", stubFactory("test-bbb", "Bee"))
	Register("test-aaa", stubFactory("test-aaa", "Ay"))

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Fatalf("List not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}

	found := false
	for _, info := range infos {
		if info.ID == "test-aaa" {
			found = true
			if info.Title != "Ay" {
				t.Errorf("title = %q, expected %q", info.Title, "Ay")
			}
		}
	}
	if !found {
		t.Error("registered scene missing from List")
	}
}

func TestExists(t *testing.T) {
	Register("test-exists", stubFactory("test-exists", "Exists"))

	if !Exists("test-exists") {
		t.Error("Exists = false for registered scene")
	}
	if Exists("test-missing") {
		t.Error("Exists = true for unregistered scene")
	}
}
