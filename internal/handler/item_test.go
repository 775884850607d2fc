package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/item"
)

const testItemID = "5d4f1a3c-8a64-4c71-bb0e-2f3d8a9c6e21"

func testItem() *domain.Item {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Item{
		ID:        testItemID,
		UserID:    testUserID,
		Name:      "Old camera",
		Category:  "electronics",
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestHandleCreateItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockItemService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Success",
			body: `{"name":"Old camera","category":"electronics","tags":["film"],"generate_icon":true}`,
			setupMock: func(m *MockItemService) {
				m.On("CreateItem", mock.Anything, testUserID, item.CreateInput{
					Name:         "Old camera",
					Category:     "electronics",
					Tags:         []string{"film"},
					GenerateIcon: true,
				}).Return(testItem(), nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"name":"Old camera"`,
		},
		{
			name:       "Missing Name",
			body:       `{"category":"electronics"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"name":"This field is required"`,
		},
		{
			name:       "Too Many Tags",
			body:       `{"name":"x","tags":["1","2","3","4","5","6","7","8","9","10","11"]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"tags"`,
		},
		{
			name:       "Malformed JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Unknown Category",
			body: `{"name":"Old camera","category":"nope"}`,
			setupMock: func(m *MockItemService) {
				m.On("CreateItem", mock.Anything, testUserID, mock.Anything).Return(nil, domain.ErrCategoryNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   ErrMsgCategoryNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockItemService{}
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			h := NewItemHandler(svc, 0)

			w := httptest.NewRecorder()
			h.HandleCreateItem(w, newUserRequest(http.MethodPost, "/api/v1/items", strings.NewReader(tt.body), nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleListItems(t *testing.T) {
	t.Run("Passes Filters", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("ListItems", mock.Anything, testUserID, mock.MatchedBy(func(f domain.ItemFilter) bool {
			return f.Category == "books" && f.IsCollected != nil && *f.IsCollected && f.Limit == 20 && f.Offset == 40
		})).Return([]domain.Item{*testItem()}, nil)

		w := httptest.NewRecorder()
		NewItemHandler(svc, 0).HandleListItems(w, newUserRequest(http.MethodGet,
			"/api/v1/items?category=books&collected=true&limit=20&offset=40", nil, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var items []domain.Item
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Len(t, items, 1)
		svc.AssertExpectations(t)
	})

	t.Run("No Filters", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("ListItems", mock.Anything, testUserID, domain.ItemFilter{}).Return([]domain.Item{}, nil)

		w := httptest.NewRecorder()
		NewItemHandler(svc, 0).HandleListItems(w, newUserRequest(http.MethodGet, "/api/v1/items", nil, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
		svc.AssertExpectations(t)
	})

	for _, query := range []string{"collected=maybe", "limit=-1", "offset=abc"} {
		t.Run("Invalid "+query, func(t *testing.T) {
			svc := &MockItemService{}

			w := httptest.NewRecorder()
			NewItemHandler(svc, 0).HandleListItems(w, newUserRequest(http.MethodGet, "/api/v1/items?"+query, nil, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandleGetItem_NotFound(t *testing.T) {
	svc := &MockItemService{}
	svc.On("GetItem", mock.Anything, testUserID, "missing").Return(nil, domain.ErrItemNotFound)

	w := httptest.NewRecorder()
	NewItemHandler(svc, 0).HandleGetItem(w, newUserRequest(http.MethodGet, "/api/v1/items/missing", nil, map[string]string{"id": "missing"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgItemNotFoundError)
	svc.AssertExpectations(t)
}

func TestHandleUpdateItem_PartialFields(t *testing.T) {
	svc := &MockItemService{}
	svc.On("UpdateItem", mock.Anything, testUserID, testItemID, mock.MatchedBy(func(u domain.ItemUpdate) bool {
		return u.Name != nil && *u.Name == "New name" && u.Category == nil && u.Notes == nil && u.Tags == nil
	})).Return(testItem(), nil)

	w := httptest.NewRecorder()
	NewItemHandler(svc, 0).HandleUpdateItem(w, newUserRequest(http.MethodPatch, "/api/v1/items/"+testItemID,
		strings.NewReader(`{"name":"New name"}`), map[string]string{"id": testItemID}))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleDeleteItem(t *testing.T) {
	svc := &MockItemService{}
	svc.On("DeleteItem", mock.Anything, testUserID, testItemID).Return(nil)

	w := httptest.NewRecorder()
	NewItemHandler(svc, 0).HandleDeleteItem(w, newUserRequest(http.MethodDelete, "/api/v1/items/"+testItemID, nil, map[string]string{"id": testItemID}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgItemDeleted)
	svc.AssertExpectations(t)
}

func TestHandleSetCollected(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockItemService{}
		collected := testItem()
		collected.IsCollected = true
		svc.On("SetCollected", mock.Anything, testUserID, testItemID, true).Return(collected, nil)

		w := httptest.NewRecorder()
		NewItemHandler(svc, 0).HandleSetCollected(w, newUserRequest(http.MethodPost, "/",
			strings.NewReader(`{"is_collected":true}`), map[string]string{"id": testItemID}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_collected":true`)
		svc.AssertExpectations(t)
	})

	t.Run("Flag Required", func(t *testing.T) {
		svc := &MockItemService{}

		w := httptest.NewRecorder()
		NewItemHandler(svc, 0).HandleSetCollected(w, newUserRequest(http.MethodPost, "/",
			strings.NewReader(`{}`), map[string]string{"id": testItemID}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"is_collected":"This field is required"`)
	})
}

func TestHandleUploadImage(t *testing.T) {
	params := map[string]string{"id": testItemID}
	stored := &domain.ItemImage{ItemID: testItemID, ContentType: "image/png", BlurHash: "LKO2?U%2Tw=w]~RBVZRi};RPxuwH", Width: 4, Height: 3}

	t.Run("Raw Body", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("UploadImage", mock.Anything, testUserID, testItemID, []byte("png-bytes")).Return(stored, nil)

		req := newUserRequest(http.MethodPut, "/", strings.NewReader("png-bytes"), params)
		req.Header.Set("Content-Type", "image/png")
		w := httptest.NewRecorder()
		NewItemHandler(svc, 1024).HandleUploadImage(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"blurhash"`)
		svc.AssertExpectations(t)
	})

	t.Run("Multipart Form", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile(imageFormField, "photo.png")
		require.NoError(t, err)
		_, _ = part.Write([]byte("multipart-bytes"))
		require.NoError(t, mw.Close())

		svc := &MockItemService{}
		svc.On("UploadImage", mock.Anything, testUserID, testItemID, []byte("multipart-bytes")).Return(stored, nil)

		req := newUserRequest(http.MethodPut, "/", &body, params)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		NewItemHandler(svc, 1024).HandleUploadImage(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Multipart Without Image Field", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("note", "hi"))
		require.NoError(t, mw.Close())

		svc := &MockItemService{}
		req := newUserRequest(http.MethodPut, "/", &body, params)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		NewItemHandler(svc, 1024).HandleUploadImage(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMissingImage)
	})

	t.Run("Oversized Body Reads One Byte Past Limit", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("UploadImage", mock.Anything, testUserID, testItemID, mock.MatchedBy(func(b []byte) bool {
			return len(b) == 9
		})).Return(nil, domain.ErrImageTooLarge)

		w := httptest.NewRecorder()
		NewItemHandler(svc, 8).HandleUploadImage(w, newUserRequest(http.MethodPut, "/", strings.NewReader(strings.Repeat("x", 64)), params))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Max Bytes Reader Tripped", func(t *testing.T) {
		svc := &MockItemService{}
		req := newUserRequest(http.MethodPut, "/", strings.NewReader(strings.Repeat("x", 64)), params)
		w := httptest.NewRecorder()
		req.Body = http.MaxBytesReader(w, req.Body, 4)

		NewItemHandler(svc, 1024).HandleUploadImage(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		svc.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unsupported Image", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("UploadImage", mock.Anything, testUserID, testItemID, mock.Anything).Return(nil, domain.ErrInvalidImage)

		w := httptest.NewRecorder()
		NewItemHandler(svc, 1024).HandleUploadImage(w, newUserRequest(http.MethodPut, "/", strings.NewReader("%PDF-1.4"), params))

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestHandleGetImage(t *testing.T) {
	params := map[string]string{"id": testItemID}

	t.Run("Streams Bytes With Metadata", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("GetImage", mock.Anything, testUserID, testItemID).Return(&domain.ItemImage{
			ItemID:      testItemID,
			ContentType: "image/jpeg",
			Data:        []byte{0xff, 0xd8, 0xff},
			BlurHash:    "L00000fQfQfQfQfQfQfQfQfQfQfQ",
			Width:       640,
			Height:      480,
		}, nil)

		w := httptest.NewRecorder()
		NewItemHandler(svc, 0).HandleGetImage(w, newUserRequest(http.MethodGet, "/", nil, params))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
		assert.Equal(t, "3", w.Header().Get("Content-Length"))
		assert.Equal(t, "640", w.Header().Get(HeaderImageWidth))
		assert.Equal(t, "480", w.Header().Get(HeaderImageHeight))
		assert.Equal(t, "L00000fQfQfQfQfQfQfQfQfQfQfQ", w.Header().Get(HeaderImageBlurHash))
		assert.Equal(t, []byte{0xff, 0xd8, 0xff}, w.Body.Bytes())
	})

	t.Run("No Image", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("GetImage", mock.Anything, testUserID, testItemID).Return(nil, domain.ErrImageNotFound)

		w := httptest.NewRecorder()
		NewItemHandler(svc, 0).HandleGetImage(w, newUserRequest(http.MethodGet, "/", nil, params))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgImageNotFoundError)
	})
}

func TestHandleDeleteImage(t *testing.T) {
	svc := &MockItemService{}
	svc.On("DeleteImage", mock.Anything, testUserID, testItemID).Return(nil)

	w := httptest.NewRecorder()
	NewItemHandler(svc, 0).HandleDeleteImage(w, newUserRequest(http.MethodDelete, "/", nil, map[string]string{"id": testItemID}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgImageDeleted)
	svc.AssertExpectations(t)
}

func TestHandleGenerateIcon(t *testing.T) {
	params := map[string]string{"id": testItemID}

	t.Run("From Photo", func(t *testing.T) {
		icon := "data:image/svg+xml;base64,PHN2Zz4="
		withIcon := testItem()
		withIcon.GeneratedIcon = &icon
		withIcon.IconSource = domain.IconSourcePhoto

		svc := &MockItemService{}
		svc.On("GenerateIcon", mock.Anything, testUserID, testItemID, domain.IconSourcePhoto).Return(withIcon, nil)

		w := httptest.NewRecorder()
		NewItemHandler(svc, 0).HandleGenerateIcon(w, newUserRequest(http.MethodPost, "/", strings.NewReader(`{"source":"photo"}`), params))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"icon_source":"photo"`)
		svc.AssertExpectations(t)
	})

	t.Run("Photo Source Without Image", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("GenerateIcon", mock.Anything, testUserID, testItemID, domain.IconSourcePhoto).Return(nil, domain.ErrImageNotFound)

		w := httptest.NewRecorder()
		NewItemHandler(svc, 0).HandleGenerateIcon(w, newUserRequest(http.MethodPost, "/", strings.NewReader(`{"source":"photo"}`), params))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Unknown Source", func(t *testing.T) {
		svc := &MockItemService{}

		w := httptest.NewRecorder()
		NewItemHandler(svc, 0).HandleGenerateIcon(w, newUserRequest(http.MethodPost, "/", strings.NewReader(`{"source":"emoji"}`), params))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GenerateIcon", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
