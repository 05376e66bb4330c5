package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var defaultCatalogTOML []byte

var (
	// ErrBookNotFound is returned when a book id is not part of the catalog.
	ErrBookNotFound = errors.New("catalog: book not found")
	// ErrStoryNotFound is returned when neither the book's story nor the default story exists.
	ErrStoryNotFound = errors.New("catalog: story not found")
)

// BookSummary is one read-only entry of the catalog shown on home, view-all and search.
type BookSummary struct {
	ID            string `toml:"id"`
	Title         string `toml:"title"`
	Author        string `toml:"author"`
	ImageRef      string `toml:"image"`
	Subtitle      string `toml:"subtitle"`
	Description   string `toml:"description"`
	WrittenBy     string `toml:"written_by"`
	IllustratedBy string `toml:"illustrated_by"`
	Words         int    `toml:"words"`
	Images        int    `toml:"images"`
	StoryID       string `toml:"story"`
}

// StoryPage is a single immutable page of a story.
type StoryPage struct {
	ID       string `toml:"id"`
	ImageRef string `toml:"image"`
	Text     string `toml:"text"`
}

// Story is the fixed ordered page sequence opened by the reader.
type Story struct {
	ID    string      `toml:"id"`
	Title string      `toml:"title"`
	Pages []StoryPage `toml:"page"`
}

// Shelf groups books for the home feed.
type Shelf struct {
	ID    string
	Title string
	Books []BookSummary
}

// Repository is the read-only catalog data source consumed by the screens.
type Repository interface {
	Books() []BookSummary
	Book(id string) (BookSummary, error)
	Shelves() []Shelf
	Story(bookID string) (Story, error)
}

type shelfRecord struct {
	ID    string   `toml:"id"`
	Title string   `toml:"title"`
	Books []string `toml:"books"`
}

type catalogFile struct {
	DefaultStory string        `toml:"default_story"`
	Shelves      []shelfRecord `toml:"shelf"`
	Books        []BookSummary `toml:"book"`
	Stories      []Story       `toml:"story"`
}

// Memory is an in-memory Repository. It is populated once at startup and
// never mutated while screens read from it.
type Memory struct {
	books        []BookSummary
	index        map[string]int
	shelves      []shelfRecord
	stories      map[string]Story
	defaultStory string
}

// NewMemory returns an empty catalog ready for Register.
func NewMemory() *Memory {
	return &Memory{
		index:   map[string]int{},
		stories: map[string]Story{},
	}
}

// Default returns the catalog bundled with the binary.
func Default() (*Memory, error) {
	return Parse(defaultCatalogTOML)
}

// Load reads a catalog file from disk.
func Load(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog TOML and validates cross references.
func Parse(data []byte) (*Memory, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	mem := NewMemory()
	mem.defaultStory = strings.TrimSpace(file.DefaultStory)
	for i, story := range file.Stories {
		if story.ID == "" {
			return nil, fmt.Errorf("story[%d]: id is required", i)
		}
		if len(story.Pages) == 0 {
			return nil, fmt.Errorf("story %q: at least one page is required", story.ID)
		}
		mem.stories[story.ID] = story
	}
	for i, book := range file.Books {
		if err := mem.addBook(book); err != nil {
			return nil, fmt.Errorf("book[%d]: %w", i, err)
		}
	}
	for _, shelf := range file.Shelves {
		for _, id := range shelf.Books {
			if _, ok := mem.index[id]; !ok {
				return nil, fmt.Errorf("shelf %q: %w: %s", shelf.ID, ErrBookNotFound, id)
			}
		}
		mem.shelves = append(mem.shelves, shelf)
	}
	if mem.defaultStory != "" {
		if _, ok := mem.stories[mem.defaultStory]; !ok {
			return nil, fmt.Errorf("default story %q: %w", mem.defaultStory, ErrStoryNotFound)
		}
	}
	return mem, nil
}

func (m *Memory) addBook(book BookSummary) error {
	if book.ID == "" {
		return errors.New("id is required")
	}
	if strings.TrimSpace(book.Title) == "" {
		return fmt.Errorf("book %q: title is required", book.ID)
	}
	if _, dup := m.index[book.ID]; dup {
		return fmt.Errorf("book %q: duplicate id", book.ID)
	}
	if book.StoryID != "" {
		if _, ok := m.stories[book.StoryID]; !ok {
			return fmt.Errorf("book %q: story %q: %w", book.ID, book.StoryID, ErrStoryNotFound)
		}
	}
	m.index[book.ID] = len(m.books)
	m.books = append(m.books, book)
	return nil
}

// Register adds a book with its own story. It must be called from the
// goroutine that reads the repository.
func (m *Memory) Register(book BookSummary, story Story) error {
	if story.ID == "" || len(story.Pages) == 0 {
		return fmt.Errorf("register %q: story has no pages", book.ID)
	}
	if _, dup := m.index[book.ID]; dup {
		return fmt.Errorf("register %q: duplicate id", book.ID)
	}
	if _, dup := m.stories[story.ID]; dup {
		return fmt.Errorf("register %q: story %q already exists", book.ID, story.ID)
	}
	m.stories[story.ID] = story
	book.StoryID = story.ID
	return m.addBook(book)
}

// Books returns the full catalog in file order.
func (m *Memory) Books() []BookSummary {
	return append([]BookSummary(nil), m.books...)
}

// Book looks a summary up by id.
func (m *Memory) Book(id string) (BookSummary, error) {
	idx, ok := m.index[id]
	if !ok {
		return BookSummary{}, fmt.Errorf("%w: %s", ErrBookNotFound, id)
	}
	return m.books[idx], nil
}

// Shelves resolves shelf definitions into book lists.
func (m *Memory) Shelves() []Shelf {
	shelves := make([]Shelf, 0, len(m.shelves))
	for _, record := range m.shelves {
		shelf := Shelf{ID: record.ID, Title: record.Title}
		for _, id := range record.Books {
			shelf.Books = append(shelf.Books, m.books[m.index[id]])
		}
		shelves = append(shelves, shelf)
	}
	return shelves
}

// Story returns the story opened by "Read Now" for a book. Books without a
// dedicated story share the catalog's default story.
func (m *Memory) Story(bookID string) (Story, error) {
	book, err := m.Book(bookID)
	if err != nil {
		return Story{}, err
	}
	storyID := book.StoryID
	if storyID == "" {
		storyID = m.defaultStory
	}
	story, ok := m.stories[storyID]
	if !ok {
		return Story{}, fmt.Errorf("%w: book %s", ErrStoryNotFound, bookID)
	}
	story.Pages = append([]StoryPage(nil), story.Pages...)
	return story, nil
}
