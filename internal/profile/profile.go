// Package profile holds the child profile collected during onboarding.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

// MaxInterests caps how many interests a child can pick.
const MaxInterests = 3

// AgeGroup is the age bracket chosen on the second onboarding step.
type AgeGroup string

const (
	AgeBaby        AgeGroup = "baby"
	AgePreschooler AgeGroup = "preschooler"
	AgeChild       AgeGroup = "child"
	AgePreteen     AgeGroup = "preteen"
)

// InterestID identifies a reading interest card.
type InterestID string

// AvatarID identifies an avatar card.
type AvatarID string

// Card is a selectable option rendered on an onboarding step.
type Card struct {
	ID       string
	Title    string
	Caption  string
	ImageRef string
}

// AgeCards lists the age brackets in display order.
var AgeCards = []Card{
	{ID: string(AgeBaby), Title: "Baby", Caption: "Ages 1–3", ImageRef: "assets/baby.png"},
	{ID: string(AgePreschooler), Title: "Preschooler", Caption: "Ages 4–6", ImageRef: "assets/preschooler.png"},
	{ID: string(AgeChild), Title: "Child", Caption: "Ages 7–10", ImageRef: "assets/child.png"},
	{ID: string(AgePreteen), Title: "Pre-teen", Caption: "Ages 11+", ImageRef: "assets/preteen.png"},
}

// InterestCards lists the interests in display order.
var InterestCards = []Card{
	{ID: "friends", Title: "Friends", ImageRef: "https://placehold.co/60x60/8A8696/FFFFFF?text=Friends"},
	{ID: "fairy-tales", Title: "Fairy Tales", ImageRef: "https://placehold.co/60x60/F08C4B/FFFFFF?text=Fairy"},
	{ID: "look-around", Title: "Look Around", ImageRef: "https://placehold.co/60x60/3F3D56/FFFFFF?text=Look"},
	{ID: "moving-machines", Title: "Moving Machines", ImageRef: "https://placehold.co/60x60/F7F4EB/8A8696?text=Machines"},
	{ID: "sleepy", Title: "Sleepy", ImageRef: "https://placehold.co/60x60/F08C4B/FFFFFF?text=Sleepy"},
	{ID: "dinosaurs", Title: "Dinosaurs", ImageRef: "https://placehold.co/60x60/3F3D56/FFFFFF?text=Dino"},
}

// AvatarCards lists the avatars in display order.
var AvatarCards = func() []Card {
	colors := []string{"F08C4B/FFFFFF", "3F3D56/FFFFFF", "8A8696/FFFFFF", "F7F4EB/8A8696"}
	cards := make([]Card, 0, 9)
	for i := 1; i <= 9; i++ {
		cards = append(cards, Card{
			ID:       fmt.Sprintf("avatar%d", i),
			Title:    fmt.Sprintf("A%d", i),
			ImageRef: fmt.Sprintf("https://placehold.co/60x60/%s?text=A%d", colors[(i-1)%len(colors)], i),
		})
	}
	return cards
}()

// ValidAge reports whether a is one of the known age groups.
func ValidAge(a AgeGroup) bool {
	for _, card := range AgeCards {
		if card.ID == string(a) {
			return true
		}
	}
	return false
}

// ValidInterest reports whether id is one of the known interests.
func ValidInterest(id InterestID) bool {
	return cardExists(InterestCards, string(id))
}

// ValidAvatar reports whether id is one of the known avatars.
func ValidAvatar(id AvatarID) bool {
	return cardExists(AvatarCards, string(id))
}

func cardExists(cards []Card, id string) bool {
	for _, card := range cards {
		if card.ID == id {
			return true
		}
	}
	return false
}

// InterestSet is an ordered selection of at most MaxInterests interests.
type InterestSet struct {
	ids []InterestID
}

// NewInterestSet builds a set from ids, keeping the first MaxInterests unique entries.
func NewInterestSet(ids ...InterestID) InterestSet {
	var set InterestSet
	for _, id := range ids {
		set.Add(id)
	}
	return set
}

// Toggle removes id when selected, otherwise adds it. Adding beyond
// MaxInterests is rejected and leaves the set unchanged.
func (s *InterestSet) Toggle(id InterestID) bool {
	if s.Has(id) {
		s.remove(id)
		return true
	}
	return s.Add(id)
}

// Add selects id unless the set is already full.
func (s *InterestSet) Add(id InterestID) bool {
	if s.Has(id) {
		return true
	}
	if len(s.ids) >= MaxInterests {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s *InterestSet) remove(id InterestID) {
	kept := s.ids[:0:0]
	for _, existing := range s.ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	s.ids = kept
}

// Has reports whether id is selected.
func (s InterestSet) Has(id InterestID) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected interests.
func (s InterestSet) Len() int { return len(s.ids) }

// IDs returns a copy of the selection in pick order.
func (s InterestSet) IDs() []InterestID {
	return append([]InterestID(nil), s.ids...)
}

// Clone returns an independent copy.
func (s InterestSet) Clone() InterestSet {
	return InterestSet{ids: s.IDs()}
}

// Equal compares two sets ignoring pick order.
func (s InterestSet) Equal(other InterestSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Answers is the record accumulated by the onboarding wizard.
type Answers struct {
	ChildName string
	ChildAge  AgeGroup
	Interests InterestSet
	Avatar    AvatarID
}

// Clone returns a deep copy so a finalized record cannot be mutated through aliasing.
func (a Answers) Clone() Answers {
	a.Interests = a.Interests.Clone()
	return a
}

// ErrIncomplete is returned by Validate when a finalized profile is missing a field.
var ErrIncomplete = errors.New("profile: incomplete answers")

// Validate checks a finalized answer record.
func (a Answers) Validate() error {
	switch {
	case strings.TrimSpace(a.ChildName) == "":
		return fmt.Errorf("%w: child name is empty", ErrIncomplete)
	case !ValidAge(a.ChildAge):
		return fmt.Errorf("%w: age %q", ErrIncomplete, a.ChildAge)
	case a.Interests.Len() == 0 || a.Interests.Len() > MaxInterests:
		return fmt.Errorf("%w: %d interests", ErrIncomplete, a.Interests.Len())
	case !ValidAvatar(a.Avatar):
		return fmt.Errorf("%w: avatar %q", ErrIncomplete, a.Avatar)
	}
	for _, id := range a.Interests.ids {
		if !ValidInterest(id) {
			return fmt.Errorf("%w: interest %q", ErrIncomplete, id)
		}
	}
	return nil
}
