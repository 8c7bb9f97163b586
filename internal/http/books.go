package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sacredsteps/sacredsteps/internal/entities"
)

type BooksController struct {
	store BookLister
}

func NewBooksController(store BookLister) *BooksController {
	return &BooksController{
		store: store,
	}
}

// List returns every book in the store in canonical order.
func (controller *BooksController) List(c *gin.Context) {
	books, err := controller.store.ListBooks()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if books == nil {
		books = []entities.BookSummary{}
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}
