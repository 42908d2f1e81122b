package services

import (
	"context"
	"errors"
	"testing"

	"github.com/studydeskhq/studydesk-backend/internal/repos"
	"github.com/studydeskhq/studydesk-backend/internal/types"
)

func TestComputeStats(t *testing.T) {
	players := []*types.BasketballPlayer{
		{ID: 1, Name: "Player 1"},
		{ID: 2, Name: "Player 2"},
	}
	tags := []*types.VideoTag{
		{PlayerID: 1, StatType: types.StatFGAMade},
		{PlayerID: 1, StatType: types.StatFGAMade},
		{PlayerID: 1, StatType: types.StatFGAMissed},
		{PlayerID: 1, StatType: types.StatAssist},
		{PlayerID: 2, StatType: types.StatFGAMissed},
		{PlayerID: 99, StatType: types.StatFGAMade}, // unknown player
		{PlayerID: 1, StatType: "rebound"},          // not a box-score stat
		{PlayerID: 2, StatType: ""},
	}

	stats := ComputeStats(players, tags)
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}

	want := []PlayerStats{
		{PlayerID: 1, Name: "Player 1", FGM: 2, FGA: 3, AST: 1, PTS: 4},
		{PlayerID: 2, Name: "Player 2", FGM: 0, FGA: 1, AST: 0, PTS: 0},
	}
	for i := range want {
		if stats[i] != want[i] {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], want[i])
		}
	}
}

func TestComputeStatsNoTags(t *testing.T) {
	players := []*types.BasketballPlayer{{ID: 1, Name: "Player 1"}}
	stats := ComputeStats(players, nil)
	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}
	if got := stats[0]; got.FGM != 0 || got.FGA != 0 || got.AST != 0 || got.PTS != 0 {
		t.Errorf("zero-tag player should have a zero line, got %+v", got)
	}
}

func TestComputeStatsPointsAreTwoPerMake(t *testing.T) {
	players := []*types.BasketballPlayer{{ID: 1, Name: "Player 1"}}
	tags := []*types.VideoTag{
		{PlayerID: 1, StatType: types.StatFGAMade},
		{PlayerID: 1, StatType: types.StatFGAMade},
		{PlayerID: 1, StatType: types.StatFGAMade},
	}
	stats := ComputeStats(players, tags)
	if stats[0].PTS != 6 {
		t.Errorf("PTS = %d, want 6", stats[0].PTS)
	}
	if stats[0].FGM > stats[0].FGA {
		t.Errorf("FGM %d exceeds FGA %d", stats[0].FGM, stats[0].FGA)
	}
}

func newBasketballService(t *testing.T) BasketballService {
	t.Helper()
	db := newTestDB(t)
	log := testLogger(t)
	return NewBasketballService(db, log,
		repos.NewBasketballPlayerRepo(db, log),
		repos.NewVideoTagRepo(db, log),
		repos.NewShotRepo(db, log),
	)
}

func TestCreateShotDefaultsToPlayerOne(t *testing.T) {
	svc := newBasketballService(t)
	ctx := context.Background()

	if _, err := svc.CreatePlayer(ctx, nil, "Player 1"); err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}

	shot, err := svc.CreateShot(ctx, nil, &types.Shot{X: 0.4, Y: 0.6, Made: true})
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	if shot.PlayerID != types.DefaultPlayerID {
		t.Errorf("PlayerID = %d, want default %d", shot.PlayerID, types.DefaultPlayerID)
	}
}

func TestCreateShotUnknownPlayer(t *testing.T) {
	svc := newBasketballService(t)

	_, err := svc.CreateShot(context.Background(), nil, &types.Shot{X: 0.1, Y: 0.2, Made: false, PlayerID: 42})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateTagUnknownPlayer(t *testing.T) {
	svc := newBasketballService(t)

	_, err := svc.CreateTag(context.Background(), nil, &types.VideoTag{Time: 12.5, PlayerID: 42, StatType: types.StatAssist})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreatePlayerDuplicateName(t *testing.T) {
	svc := newBasketballService(t)
	ctx := context.Background()

	if _, err := svc.CreatePlayer(ctx, nil, "Jordan"); err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	_, err := svc.CreatePlayer(ctx, nil, "Jordan")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestGameDataJoinsPlayerNames(t *testing.T) {
	svc := newBasketballService(t)
	ctx := context.Background()

	player, err := svc.CreatePlayer(ctx, nil, "Player 1")
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	if _, err := svc.CreateTag(ctx, nil, &types.VideoTag{Time: 31.0, PlayerID: player.ID, StatType: types.StatFGAMade}); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	if _, err := svc.CreateTag(ctx, nil, &types.VideoTag{Time: 8.0, PlayerID: player.ID, StatType: types.StatAssist}); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	data, err := svc.GameData(ctx, nil)
	if err != nil {
		t.Fatalf("GameData: %v", err)
	}
	if len(data.Tags) != 2 {
		t.Fatalf("len(tags) = %d, want 2", len(data.Tags))
	}
	// Ordered by video timestamp.
	if data.Tags[0].Time != 8.0 || data.Tags[1].Time != 31.0 {
		t.Errorf("tags not ordered by time: %v, %v", data.Tags[0].Time, data.Tags[1].Time)
	}
	for _, tag := range data.Tags {
		if tag.PlayerName != "Player 1" {
			t.Errorf("player_name = %q, want %q", tag.PlayerName, "Player 1")
		}
	}
	if len(data.Stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(data.Stats))
	}
	if got := data.Stats[0]; got.FGM != 1 || got.FGA != 1 || got.AST != 1 || got.PTS != 2 {
		t.Errorf("stats = %+v", got)
	}
}
