package profile

import (
	"errors"
	"testing"
)

func TestInterestSetRejectsFourth(t *testing.T) {
	t.Parallel()

	set := NewInterestSet("friends", "dinosaurs", "sleepy")
	if set.Toggle("fairy-tales") {
		t.Fatal("a fourth interest should be rejected")
	}
	if set.Len() != 3 {
		t.Fatalf("set size changed to %d", set.Len())
	}
	want := NewInterestSet("friends", "dinosaurs", "sleepy")
	if !set.Equal(want) {
		t.Fatalf("members changed: %v", set.IDs())
	}
}

func TestInterestSetToggleRemoves(t *testing.T) {
	t.Parallel()

	set := NewInterestSet("friends", "dinosaurs", "sleepy")
	if !set.Toggle("dinosaurs") {
		t.Fatal("deselecting should always succeed")
	}
	if set.Has("dinosaurs") || set.Len() != 2 {
		t.Fatalf("unexpected set after removal: %v", set.IDs())
	}
	if !set.Toggle("fairy-tales") {
		t.Fatal("adding after a removal should succeed")
	}
}

func TestInterestSetCloneIsIndependent(t *testing.T) {
	t.Parallel()

	set := NewInterestSet("friends")
	clone := set.Clone()
	clone.Toggle("sleepy")
	if set.Has("sleepy") {
		t.Fatal("clone shares storage with original")
	}
}

func TestAnswersValidate(t *testing.T) {
	t.Parallel()

	complete := Answers{
		ChildName: "Mia",
		ChildAge:  AgePreschooler,
		Interests: NewInterestSet("friends", "dinosaurs"),
		Avatar:    "avatar3",
	}
	if err := complete.Validate(); err != nil {
		t.Fatalf("complete answers rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Answers)
	}{
		{name: "blank name", mutate: func(a *Answers) { a.ChildName = "  " }},
		{name: "missing age", mutate: func(a *Answers) { a.ChildAge = "" }},
		{name: "no interests", mutate: func(a *Answers) { a.Interests = InterestSet{} }},
		{name: "unknown interest", mutate: func(a *Answers) { a.Interests = NewInterestSet("robots") }},
		{name: "unknown avatar", mutate: func(a *Answers) { a.Avatar = "avatar42" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answers := complete.Clone()
			tc.mutate(&answers)
			if err := answers.Validate(); !errors.Is(err, ErrIncomplete) {
				t.Fatalf("expected ErrIncomplete, got %v", err)
			}
		})
	}
}

func TestCardsAreKnown(t *testing.T) {
	t.Parallel()

	if len(AvatarCards) != 9 || AvatarCards[2].ID != "avatar3" {
		t.Fatalf("unexpected avatar cards: %+v", AvatarCards)
	}
	if !ValidAge(AgePreteen) || ValidAge("toddler") {
		t.Fatal("age validation mismatch")
	}
}
