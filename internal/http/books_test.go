package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cos/book/internal/entities"
	"github.com/cos/book/internal/services"
)

type mockBookService struct {
	mock.Mock
}

func (m *mockBookService) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	args := m.Called(ctx, book)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Book), args.Error(1)
}

func (m *mockBookService) GetOne(ctx context.Context, id uint) (*entities.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Book), args.Error(1)
}

func (m *mockBookService) GetAll(ctx context.Context) ([]entities.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Book), args.Error(1)
}

func (m *mockBookService) Update(ctx context.Context, id uint, patch *entities.Book) (*entities.Book, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Book), args.Error(1)
}

func (m *mockBookService) Delete(ctx context.Context, id uint) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func setupBooksRouter(t *testing.T) (*gin.Engine, *mockBookService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := &mockBookService{}
	t.Cleanup(func() { service.AssertExpectations(t) })

	controller := NewBooksController(service)

	router := gin.New()
	router.POST("/book", controller.Create)
	router.GET("/book", controller.GetAll)
	router.GET("/book/:id", controller.GetOne)
	router.PUT("/book/:id", controller.Update)
	router.DELETE("/book/:id", controller.Delete)
	return router, service
}

func bookJSON(t *testing.T, book entities.Book) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(book)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func matchBook(title, author string) any {
	return mock.MatchedBy(func(b *entities.Book) bool {
		return b.Title == title && b.Author == author
	})
}

func TestBooksController_Create(t *testing.T) {
	t.Run("returns 201 with saved book", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("Create", mock.Anything, matchBook("스프링 따라하기", "코스")).
			Return(&entities.Book{ID: 1, Title: "스프링 따라하기", Author: "코스"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/book", bookJSON(t, entities.Book{Title: "스프링 따라하기", Author: "코스"}))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var book entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, uint(1), book.ID)
		assert.Equal(t, "스프링 따라하기", book.Title)
	})

	t.Run("accepts null id", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("Create", mock.Anything, matchBook("Go", "Gopher")).
			Return(&entities.Book{ID: 5, Title: "Go", Author: "Gopher"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/book", bytes.NewBufferString(`{"id":null,"title":"Go","author":"Gopher"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":5`)
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		router, _ := setupBooksRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/book", bytes.NewBufferString(`{"title":`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), CodeBadRequest)
	})

	t.Run("returns 500 without leaking storage error", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("Create", mock.Anything, mock.Anything).
			Return(nil, errors.New("NOT NULL constraint failed: books.title"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/book", bookJSON(t, entities.Book{}))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "constraint")
	})
}

func TestBooksController_GetAll(t *testing.T) {
	t.Run("returns all books as array", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("GetAll", mock.Anything).Return([]entities.Book{
			{ID: 1, Title: "스프링 따라하기", Author: "코스"},
			{ID: 2, Title: "리액트 따라하기", Author: "코스"},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var books []entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
		assert.Len(t, books, 2)
		assert.Equal(t, "스프링 따라하기", books[0].Title)
	})

	t.Run("returns empty array when no books", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("GetAll", mock.Anything).Return([]entities.Book{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns 500 on storage error", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBooksController_GetOne(t *testing.T) {
	t.Run("returns book", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("GetOne", mock.Anything, uint(1)).
			Return(&entities.Book{ID: 1, Title: "자바 공부하기", Author: "쌀"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"title":"자바 공부하기","author":"쌀"}`, w.Body.String())
	})

	t.Run("returns 404 on NotFound", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("GetOne", mock.Anything, uint(9)).Return(nil, &services.NotFoundError{ID: 9})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/9", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, CodeNotFound, response.Code)
		assert.Equal(t, "book id 9 not found", response.Error)
	})

	t.Run("returns 500 on other errors", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("GetOne", mock.Anything, uint(1)).Return(nil, errors.New("disk I/O error"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		router, _ := setupBooksRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid id")
	})
}

func TestBooksController_Update(t *testing.T) {
	t.Run("returns updated book", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("Update", mock.Anything, uint(1), matchBook("C++ 따라하기", "코스")).
			Return(&entities.Book{ID: 1, Title: "C++ 따라하기", Author: "코스"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/book/1", bookJSON(t, entities.Book{Title: "C++ 따라하기", Author: "코스"}))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var book entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, "C++ 따라하기", book.Title)
	})

	t.Run("returns 404 on NotFound", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("Update", mock.Anything, uint(3), mock.Anything).Return(nil, &services.NotFoundError{ID: 3})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/book/3", bookJSON(t, entities.Book{Title: "T", Author: "A"}))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		router, _ := setupBooksRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/book/1", bytes.NewBufferString(`not json`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBooksController_Delete(t *testing.T) {
	t.Run("returns ok as plain text", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("Delete", mock.Anything, uint(1)).Return("ok", nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/book/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("returns 500 on storage error", func(t *testing.T) {
		router, service := setupBooksRouter(t)
		service.On("Delete", mock.Anything, uint(1)).Return("", errors.New("connection refused"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/book/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		router, _ := setupBooksRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/book/-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
