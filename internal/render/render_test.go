package render

import (
	"strings"
	"testing"

	"cema-admin/internal/domain"
	"cema-admin/internal/state"
)

func testSnapshot() state.Snapshot {
	return state.Snapshot{
		Portfolios: domain.DefaultPortfolios(),
		Offerings:  domain.DefaultOfferings(),
		Projects:   domain.DefaultProjects(),
		Users:      domain.DefaultUsers(),
		ChatThreads: []domain.ChatThread{
			{ID: 2, Name: "Budi Santoso", LastMessage: "Halo", UnreadCount: 2, Online: true},
		},
		ChatMessages: domain.DefaultChatMessages(),
		QuizQuestions: []domain.QuizQuestion{
			{ID: 1, Question: "Gaya apa yang Anda sukai?", Options: []string{"Minimalis", "Klasik"}},
		},
		QuizResults: []domain.QuizResult{
			{ID: 1, UserName: "Sari", UserEmail: "sari@example.com", ResultTitle: "Minimalis Modern", Timestamp: "2025-10-30T08:00:00Z"},
		},
		Calculator: domain.DefaultCalculatorSettings(),
		ActiveTab:  "overview",
	}
}

func TestTab_RendersEveryTab(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	snap := testSnapshot()
	for _, tab := range state.Tabs {
		var buf strings.Builder
		if err := r.Tab(&buf, tab, snap); err != nil {
			t.Fatalf("tab %s: %v", tab, err)
		}
		if !strings.Contains(buf.String(), `class="tab tab-`+tab+`"`) {
			t.Fatalf("tab %s: missing section wrapper in output", tab)
		}
	}
}

func TestTab_UnknownName(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	var buf strings.Builder
	if err := r.Tab(&buf, "settings", state.Snapshot{}); err == nil {
		t.Fatal("expected error for unknown tab")
	}
}

func TestTab_OverviewShowsStats(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	var buf strings.Builder
	if err := r.Tab(&buf, "overview", testSnapshot()); err != nil {
		t.Fatalf("overview: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Rp 150.000.000") {
		t.Fatalf("expected formatted revenue in output:\n%s", out)
	}
	if !strings.Contains(out, "Renovasi Rumah Utama") {
		t.Fatal("expected project row in overview")
	}
}

func TestTab_ChatSelectsThreadMessages(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	snap := testSnapshot()
	snap.SelectedThread = 2

	var buf strings.Builder
	if err := r.Tab(&buf, "chat", snap); err != nil {
		t.Fatalf("chat: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Halo, saya ingin tanya tentang progress proyek") {
		t.Fatal("expected selected thread message in output")
	}
	if !strings.Contains(out, `class="thread selected"`) {
		t.Fatal("expected selected thread marker")
	}
}

func TestTab_EscapesUserContent(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	snap := state.Snapshot{
		Portfolios: []domain.PortfolioItem{
			{ID: 1, Title: "<script>alert(1)</script>", Category: "X", IsActive: true},
		},
	}
	var buf strings.Builder
	if err := r.Tab(&buf, "portfolio", snap); err != nil {
		t.Fatalf("portfolio: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Fatal("user content must be escaped")
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[int64]string{
		0:         "0",
		999:       "999",
		1000:      "1.000",
		2500000:   "2.500.000",
		150000000: "150.000.000",
	}
	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%d) = %q, want %q", in, got, want)
		}
	}
}
