package aoe4world

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Sternrassler/aoe4world-client/internal/testutil"
	"github.com/Sternrassler/aoe4world-client/pkg/pagination"
	"github.com/Sternrassler/aoe4world-client/pkg/types"
)

// newTestClient builds a facade talking to the mock API through a plain
// HTTP client, bypassing cache and pacing.
func newTestClient(t *testing.T, mock *testutil.MockAPI) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: mock.URL(), Transport: http.DefaultClient})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

func collect[T any](seq iter.Seq2[T, error]) (items []T, errs []error) {
	for v, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		items = append(items, v)
	}
	return items, errs
}

func gameFixtures(n int) []json.RawMessage {
	items := make([]json.RawMessage, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, testutil.GameJSON(i))
	}
	return items
}

func TestProfile(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetResponse("/players/1180892", testutil.NewJSONResponse(string(testutil.ProfileJSON(1180892, "Aelfric"))))

	c := newTestClient(t, mock)
	profile, err := c.Profile(context.Background(), 1180892)
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}

	if profile.Name != "Aelfric" {
		t.Errorf("Name = %q, want %q", profile.Name, "Aelfric")
	}
	if profile.ProfileID != 1180892 {
		t.Errorf("ProfileID = %d, want 1180892", profile.ProfileID)
	}
}

func TestProfile_NotFound(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetResponse("/players/999", testutil.MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       `{"error": "Not found"}`,
	})

	c := newTestClient(t, mock)
	_, err := c.Profile(context.Background(), 999)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var statusErr *pagination.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *pagination.StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusNotFound)
	}
}

func TestProfile_InvalidID(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	c := newTestClient(t, mock)
	_, err := c.Profile(context.Background(), 0)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T: %v", err, err)
	}
	if vErr.Field != "profile_id" {
		t.Errorf("Field = %q, want %q", vErr.Field, "profile_id")
	}
	if mock.GetRequestCount() != 0 {
		t.Errorf("Request count = %d, want 0 (rejected before network)", mock.GetRequestCount())
	}
}

func TestGames_StreamsAllPagesInOrder(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	// Delay page 2 so later pages complete first; emission order must
	// not change.
	mock.ServePaginated("/players/1180892/games", "games", gameFixtures(120), testutil.PaginateOptions{
		PageDelays: map[int]time.Duration{2: 20 * time.Millisecond},
	})

	c := newTestClient(t, mock)
	stream, err := c.Games(context.Background(), 1180892, nil)
	if err != nil {
		t.Fatalf("Games() failed: %v", err)
	}

	games, errs := collect(stream)
	if len(errs) != 0 {
		t.Fatalf("Stream errors: %v", errs)
	}
	if len(games) != 120 {
		t.Fatalf("Got %d games, want 120", len(games))
	}
	for i, g := range games {
		if g.GameID != int64(i+1) {
			t.Fatalf("games[%d].GameID = %d, want %d", i, g.GameID, i+1)
		}
	}

	// One probe plus ceil(120/50) = 3 pages.
	if got := mock.GetRequestCount(); got != 4 {
		t.Errorf("Request count = %d, want 4", got)
	}
	requests := mock.Requests()
	if want := "GET /players/1180892/games?limit=1&page=1"; requests[0] != want {
		t.Errorf("First request = %q, want probe %q", requests[0], want)
	}
}

func TestGames_WithLimitSkipsProbe(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.ServePaginated("/players/1180892/games", "games", gameFixtures(120), testutil.PaginateOptions{})

	c := newTestClient(t, mock)
	stream, err := c.Games(context.Background(), 1180892, nil, WithLimit(30))
	if err != nil {
		t.Fatalf("Games() failed: %v", err)
	}

	games, errs := collect(stream)
	if len(errs) != 0 {
		t.Fatalf("Stream errors: %v", errs)
	}
	if len(games) != 30 {
		t.Fatalf("Got %d games, want exactly 30", len(games))
	}
	for i, g := range games {
		if g.GameID != int64(i+1) {
			t.Fatalf("games[%d].GameID = %d, want %d", i, g.GameID, i+1)
		}
	}

	requests := mock.Requests()
	if len(requests) != 1 {
		t.Fatalf("Requests = %v, want a single page fetch and no probe", requests)
	}
	if want := "GET /players/1180892/games?limit=50&page=1"; requests[0] != want {
		t.Errorf("Request = %q, want %q", requests[0], want)
	}
}

func TestGames_FilterForwarded(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.ServePaginated("/players/1180892/games", "games", gameFixtures(5), testutil.PaginateOptions{})

	filter := &types.GamesFilter{
		Leaderboard: types.LeaderboardRM1v1,
		Since:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	c := newTestClient(t, mock)
	stream, err := c.Games(context.Background(), 1180892, filter, WithLimit(5))
	if err != nil {
		t.Fatalf("Games() failed: %v", err)
	}
	if _, errs := collect(stream); len(errs) != 0 {
		t.Fatalf("Stream errors: %v", errs)
	}

	request := mock.Requests()[0]
	if !strings.Contains(request, "leaderboard=rm_1v1") {
		t.Errorf("Request %q missing leaderboard param", request)
	}
	if !strings.Contains(request, "since=2025-03-01") {
		t.Errorf("Request %q missing since param", request)
	}
}

func TestGames_InvalidProfileID(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	c := newTestClient(t, mock)
	stream, err := c.Games(context.Background(), 0, nil)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T: %v", err, err)
	}
	if stream != nil {
		t.Error("Expected nil stream alongside validation error")
	}
	if mock.GetRequestCount() != 0 {
		t.Errorf("Request count = %d, want 0 (rejected before network)", mock.GetRequestCount())
	}
}

func TestGames_PageFailure(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.ServePaginated("/players/1180892/games", "games", gameFixtures(120), testutil.PaginateOptions{
		FailPages: map[int]int{2: http.StatusInternalServerError},
	})

	c := newTestClient(t, mock)
	stream, err := c.Games(context.Background(), 1180892, nil)
	if err != nil {
		t.Fatalf("Games() failed: %v", err)
	}

	games, errs := collect(stream)

	// Page 1 emits in full, then the page 2 failure ends the stream.
	if len(games) != 50 {
		t.Errorf("Got %d games before the failure, want 50", len(games))
	}
	if len(errs) != 1 {
		t.Fatalf("Got %d errors, want exactly 1 terminal error", len(errs))
	}

	var statusErr *pagination.StatusError
	if !errors.As(errs[0], &statusErr) {
		t.Fatalf("Expected *pagination.StatusError, got %T: %v", errs[0], errs[0])
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusInternalServerError)
	}
}

func TestGames_UnknownTotalStopsAtShortPage(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.ServePaginated("/players/1180892/games", "games", gameFixtures(75), testutil.PaginateOptions{
		OmitTotalCount: true,
	})

	c := newTestClient(t, mock)
	stream, err := c.Games(context.Background(), 1180892, nil)
	if err != nil {
		t.Fatalf("Games() failed: %v", err)
	}

	games, errs := collect(stream)
	if len(errs) != 0 {
		t.Fatalf("Stream errors: %v", errs)
	}
	if len(games) != 75 {
		t.Fatalf("Got %d games, want 75", len(games))
	}

	// Probe, full page 1, short page 2. The short page ends the stream
	// without a further request.
	if got := mock.GetRequestCount(); got != 3 {
		t.Errorf("Request count = %d, want 3", got)
	}
}

func TestSearch(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	profiles := []json.RawMessage{
		testutil.ProfileJSON(1180892, "Aelfric"),
		testutil.ProfileJSON(2209471, "AelfricTheRed"),
	}
	mock.ServePaginated("/players/search", "players", profiles, testutil.PaginateOptions{})

	c := newTestClient(t, mock)
	stream, err := c.Search(context.Background(), "Aelfric", false)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	results, errs := collect(stream)
	if len(errs) != 0 {
		t.Fatalf("Stream errors: %v", errs)
	}
	if len(results) != 2 {
		t.Fatalf("Got %d profiles, want 2", len(results))
	}
	if results[0].Name != "Aelfric" {
		t.Errorf("results[0].Name = %q, want %q", results[0].Name, "Aelfric")
	}

	if request := mock.Requests()[0]; !strings.Contains(request, "query=Aelfric") {
		t.Errorf("Request %q missing query param", request)
	}
}

func TestSearch_QueryValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"empty", "", true},
		{"two runes", "ab", true},
		{"three runes", "abc", false},
		{"three multibyte runes", "αβγ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockAPI()
			defer mock.Close()
			mock.ServePaginated("/players/search", "players", nil, testutil.PaginateOptions{})

			c := newTestClient(t, mock)
			stream, err := c.Search(context.Background(), tt.query, false)

			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("Expected *ValidationError, got %T: %v", err, err)
				}
				if vErr.Field != "query" {
					t.Errorf("Field = %q, want %q", vErr.Field, "query")
				}
				if mock.GetRequestCount() != 0 {
					t.Errorf("Request count = %d, want 0 (rejected before network)", mock.GetRequestCount())
				}
				return
			}

			if err != nil {
				t.Fatalf("Search() failed: %v", err)
			}
			if _, errs := collect(stream); len(errs) != 0 {
				t.Fatalf("Stream errors: %v", errs)
			}
		})
	}
}

func TestSearch_ExactForwarded(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.ServePaginated("/players/search", "players", nil, testutil.PaginateOptions{})

	c := newTestClient(t, mock)
	stream, err := c.Search(context.Background(), "Aelfric", true)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	collect(stream)

	if request := mock.Requests()[0]; !strings.Contains(request, "exact=true") {
		t.Errorf("Request %q missing exact param", request)
	}
}

func TestLeaderboard(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	entries := []json.RawMessage{
		testutil.LeaderboardEntryJSON(1, "VortiX", 2513),
		testutil.LeaderboardEntryJSON(2, "SteppeWolf", 2498),
		testutil.LeaderboardEntryJSON(3, "RiverKing", 2466),
		testutil.LeaderboardEntryJSON(4, "Aelfric", 2440),
		testutil.LeaderboardEntryJSON(5, "OldOak", 2431),
	}
	mock.ServePaginated("/leaderboards/rm_solo", "players", entries, testutil.PaginateOptions{})

	c := newTestClient(t, mock)
	stream, err := c.Leaderboard(context.Background(), types.LeaderboardRMSolo, nil, WithLimit(3))
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}

	standings, errs := collect(stream)
	if len(errs) != 0 {
		t.Fatalf("Stream errors: %v", errs)
	}
	if len(standings) != 3 {
		t.Fatalf("Got %d entries, want exactly 3", len(standings))
	}
	for i, entry := range standings {
		if entry.Rank != i+1 {
			t.Errorf("standings[%d].Rank = %d, want %d", i, entry.Rank, i+1)
		}
	}
	if standings[0].Name != "VortiX" {
		t.Errorf("standings[0].Name = %q, want %q", standings[0].Name, "VortiX")
	}

	if want := "GET /leaderboards/rm_solo?limit=50&page=1"; mock.Requests()[0] != want {
		t.Errorf("Request = %q, want %q", mock.Requests()[0], want)
	}
}

func TestLeaderboard_EmptyBoard(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	c := newTestClient(t, mock)
	_, err := c.Leaderboard(context.Background(), "", nil)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T: %v", err, err)
	}
	if vErr.Field != "leaderboard" {
		t.Errorf("Field = %q, want %q", vErr.Field, "leaderboard")
	}
}

func TestLeaderboard_FilterForwarded(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.ServePaginated("/leaderboards/rm_solo", "players", nil, testutil.PaginateOptions{})

	c := newTestClient(t, mock)
	stream, err := c.Leaderboard(context.Background(), types.LeaderboardRMSolo, &types.LeaderboardFilter{Country: "de"}, WithLimit(10))
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	collect(stream)

	if request := mock.Requests()[0]; !strings.Contains(request, "country=de") {
		t.Errorf("Request %q missing country param", request)
	}
}

func TestPackageLevelSearch_Validation(t *testing.T) {
	// Validation happens before the default client touches the network,
	// so this passes offline.
	_, err := Search(context.Background(), "ab", false)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T: %v", err, err)
	}
}
