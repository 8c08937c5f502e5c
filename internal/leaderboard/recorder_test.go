package leaderboard_test

import (
	"errors"
	"testing"

	"arcadia/internal/leaderboard"
	"arcadia/internal/leaderboard/mocks"

	"go.uber.org/mock/gomock"
)

func TestRecorderSavesPlacedScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Load().Return([]leaderboard.Entry{{Name: "OLD", Score: 100}}, nil)
	store.EXPECT().Save([]leaderboard.Entry{{Name: "NEW", Score: 500}, {Name: "OLD", Score: 100}}).Return(nil)

	r := leaderboard.NewRecorder(store)
	placed, err := r.Record("NEW", 500)
	if err != nil || !placed {
		t.Fatalf("placed=%v err=%v", placed, err)
	}
}

func TestRecorderEmptyNameDoesNotSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Load().Return(nil, nil)
	store.EXPECT().Save(gomock.Any()).Times(0)

	r := leaderboard.NewRecorder(store)
	if _, err := r.Record("", 500); !errors.Is(err, leaderboard.ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
}

func TestRecorderDegradesOnStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Load().Return(nil, errors.New("disk gone"))
	store.EXPECT().Save(gomock.Any()).Return(errors.New("disk gone"))

	r := leaderboard.NewRecorder(store)
	placed, err := r.Record("ACE", 10)
	if !placed || err == nil {
		t.Fatalf("placed=%v err=%v, want in-memory placement with error", placed, err)
	}
	if got := r.Entries(); len(got) != 1 || got[0].Name != "ACE" {
		t.Fatalf("entries = %v", got)
	}
}

func TestRecorderSkipsSaveWhenNotPlaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	full := make([]leaderboard.Entry, 0, 10)
	for i := 10; i >= 1; i-- {
		full = append(full, leaderboard.Entry{Name: "AAA", Score: i * 10})
	}
	store.EXPECT().Load().Return(full, nil)
	store.EXPECT().Save(gomock.Any()).Times(0)

	r := leaderboard.NewRecorder(store)
	placed, err := r.Record("AAA", 10)
	if err != nil || placed {
		t.Fatalf("placed=%v err=%v", placed, err)
	}
}
