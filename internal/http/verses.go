package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sacredsteps/sacredsteps/internal/entities"
	"github.com/sacredsteps/sacredsteps/internal/services"
)

// VerseRequest is the JSON body accepted when creating a verse.
// The ID is always generated server-side.
type VerseRequest struct {
	Book        string `json:"book"`
	Chapter     int    `json:"chapter"`
	VerseNumber int    `json:"verse_number"`
	Text        string `json:"text"`
	BookIndex   int    `json:"book_index"`
}

// BatchRequest is the JSON body accepted by the batch endpoint.
type BatchRequest struct {
	Verses []VerseRequest `json:"verses"`
}

func (r VerseRequest) toVerse() *entities.Verse {
	return entities.NewVerse(r.Book, r.Chapter, r.VerseNumber, r.Text, r.BookIndex)
}

type VersesController struct {
	store VerseStore
}

func NewVersesController(store VerseStore) *VersesController {
	return &VersesController{
		store: store,
	}
}

// List returns all verses, or the verses of one book when ?book= is set.
func (controller *VersesController) List(c *gin.Context) {
	var (
		verses []entities.Verse
		err    error
	)
	if book := c.Query("book"); book != "" {
		verses, err = controller.store.GetByBook(book)
	} else {
		verses, err = controller.store.GetAll()
	}
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if verses == nil {
		verses = []entities.Verse{}
	}
	c.IndentedJSON(http.StatusOK, gin.H{"verses": verses, "count": len(verses)})
}

func (controller *VersesController) Get(c *gin.Context) {
	verse, err := controller.store.GetByID(c.Param("id"))
	if errors.Is(err, services.ErrVerseNotFound) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "verse not found"})
		return
	}
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, verse)
}

func (controller *VersesController) Create(c *gin.Context) {
	var req VerseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	verse := req.toVerse()
	if err := controller.store.Create(verse); err != nil {
		c.IndentedJSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusCreated, verse)
}

func (controller *VersesController) CreateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Verses) == 0 {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "verses must not be empty"})
		return
	}

	verses := make([]entities.Verse, 0, len(req.Verses))
	for _, r := range req.Verses {
		verses = append(verses, *r.toVerse())
	}

	if err := controller.store.CreateBatch(verses); err != nil {
		c.IndentedJSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusCreated, gin.H{"created": len(verses)})
}

func (controller *VersesController) DeleteAll(c *gin.Context) {
	deleted, err := controller.store.DeleteAll()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"deleted": deleted})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, services.ErrVerseNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
