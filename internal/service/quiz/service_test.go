package quiz

import (
	"context"
	"errors"
	"testing"

	"cema-admin/internal/domain"
	"cema-admin/internal/state"
	"cema-admin/internal/store"
)

func newService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	adapter := store.NewMemory()
	tree := state.Load(context.Background(), adapter, nil, nil)
	return New(tree, adapter, nil, nil), adapter
}

func TestCreateQuestion_EmptyCollectionGetsIDOne(t *testing.T) {
	svc, _ := newService(t)

	q, err := svc.CreateQuestion(context.Background(), QuestionInput{
		Question: "Q",
		Options:  []string{"A", "B"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.ID != 1 {
		t.Fatalf("expected id 1, got %d", q.ID)
	}
}

func TestCreateQuestion_RejectsFewerThanTwoOptions(t *testing.T) {
	svc, _ := newService(t)

	cases := []QuestionInput{
		{Question: "Q", Options: nil},
		{Question: "Q", Options: []string{"only one"}},
		{Question: "Q", Options: []string{"A", "   "}},
		{Question: "  ", Options: []string{"A", "B"}},
	}
	for i, in := range cases {
		if _, err := svc.CreateQuestion(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
	if len(svc.Questions()) != 0 {
		t.Fatal("failed creates must not mutate the collection")
	}
}

func TestUpdateQuestion_UnknownIDIsSilentNoop(t *testing.T) {
	svc, _ := newService(t)

	q, err := svc.UpdateQuestion(context.Background(), 7, QuestionInput{Question: "Q", Options: []string{"A", "B"}})
	if q != nil || err != nil {
		t.Fatalf("expected silent no-op, got q=%v err=%v", q, err)
	}
}

func TestDeleteQuestion_RequiresConfirmation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.CreateQuestion(ctx, QuestionInput{Question: "Q", Options: []string{"A", "B"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteQuestion(ctx, 1, false); !errors.Is(err, domain.ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if err := svc.DeleteQuestion(ctx, 1, true); err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}
	if len(svc.Questions()) != 0 {
		t.Fatal("expected question removed")
	}
}

func TestAppendResult_PersistsAndStamps(t *testing.T) {
	svc, adapter := newService(t)

	r, err := svc.AppendResult(context.Background(), ResultInput{
		UserName:    "Sari",
		UserEmail:   "sari@example.com",
		ResultTitle: "Minimalis Modern",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if r.ID != 1 || r.Timestamp == "" {
		t.Fatalf("unexpected result %+v", r)
	}
	if _, err := adapter.Read(context.Background(), store.KeyQuizResults); err != nil {
		t.Fatalf("results should be persisted: %v", err)
	}
}

func TestAppendResult_RequiresNameAndTitle(t *testing.T) {
	svc, _ := newService(t)

	if _, err := svc.AppendResult(context.Background(), ResultInput{UserEmail: "x@y.com"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(svc.Results()) != 0 {
		t.Fatal("failed append must not mutate results")
	}
}
