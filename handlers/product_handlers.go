package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecommerce-server/cache"
	"ecommerce-server/models"
	"ecommerce-server/utils"
)

const maxUploadSize = 32 << 20 // 32MB

// GetProducts returns the whole catalog, unpaginated. Reads go through the
// cache; a miss falls back to the store and repopulates it.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var products []models.Product
	if err := cache.GetCache(ctx, cache.ProductListKey, &products); err == nil {
		w.Header().Set("X-Cache", "HIT")
		respondOK(w, products)
		return
	}
	w.Header().Set("X-Cache", "MISS")

	cursor, err := h.products().Find(ctx, bson.M{})
	if err != nil {
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &products); err != nil {
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := cache.SetCache(ctx, cache.ProductListKey, products, 5*time.Minute); err != nil && err != cache.ErrCacheDisabled {
		h.Log.WithError(err).Warn("failed to cache product list")
	}

	respondOK(w, products)
}

// GetProduct returns one product by id. The id shape was already enforced by
// the route pattern; an absent record answers OK with null data, which the
// caller translates.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["id"]

	var product models.Product
	cacheKey := fmt.Sprintf(cache.ProductDetailPattern, productID)
	if err := cache.GetCache(ctx, cacheKey, &product); err == nil {
		w.Header().Set("X-Cache", "HIT")
		respondOK(w, product)
		return
	}
	w.Header().Set("X-Cache", "MISS")

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		h.ErrorHdlr.HandleKnownError(w, utils.CodeInvalidParam)
		return
	}

	err = h.products().FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondOK(w, nil)
			return
		}
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := cache.SetCache(ctx, cacheKey, product, 30*time.Minute); err != nil && err != cache.ErrCacheDisabled {
		h.Log.WithError(err).Warn("failed to cache product")
	}

	respondOK(w, product)
}

// CreateProduct inserts a new product from a multipart form. The thumbnail
// file is required and answers with status FIL when missing.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("thumbnail")
	if err != nil {
		respondFil(w, "The file could not be uploaded")
		return
	}
	defer file.Close()

	req, ok := h.productRequestFromForm(w, r)
	if !ok {
		return
	}

	filename, err := SaveThumbnail(file, header, h.UploadDir)
	if err != nil {
		h.Log.WithError(err).Error("thumbnail save failed")
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	req.Thumbnail = filename

	product := models.Product{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		Code:        req.Code,
		Category:    req.Category,
		Stock:       req.Stock,
	}

	if _, err := h.products().InsertOne(r.Context(), product); err != nil {
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.invalidateProductCache(r.Context(), product.ID.Hex())
	h.Log.WithField("title", product.Title).Debug("product created")
	respondOK(w, product)
}

// UpdateProduct applies a partial update from a multipart form. Only the
// submitted fields reach the store; the thumbnail is optional.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["id"]

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		h.ErrorHdlr.HandleKnownError(w, utils.CodeInvalidParam)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req, ok := h.productRequestFromForm(w, r)
	if !ok {
		return
	}

	update := models.UpdateProductRequest{
		Title:       &req.Title,
		Description: &req.Description,
		Price:       &req.Price,
		Code:        &req.Code,
		Stock:       &req.Stock,
	}
	if req.Category != "" {
		update.Category = &req.Category
	}

	if file, header, err := r.FormFile("thumbnail"); err == nil {
		defer file.Close()
		filename, err := SaveThumbnail(file, header, h.UploadDir)
		if err != nil {
			h.Log.WithError(err).Error("thumbnail save failed")
			respondErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		update.Thumbnail = &filename
	}

	var updated models.Product
	err = h.products().FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": update.SetDocument()},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondOK(w, nil)
			return
		}
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.invalidateProductCache(ctx, productID)
	respondOK(w, updated)
}

// DeleteProduct is the view-layer shortcut. It answers with the
// success/error envelope and reports success even when no record matched.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["id"]

	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		h.ErrorHdlr.HandleKnownError(w, utils.CodeInvalidParam)
		return
	}

	if _, err := h.products().DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		respondViewError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.invalidateProductCache(ctx, productID)
	h.Log.WithField("id", productID).Debug("product deleted")
	respondViewSuccess(w, "Product deleted")
}

// productRequestFromForm builds and validates the create request from the
// posted form fields. It writes the error response itself and reports
// whether parsing succeeded.
func (h *Handler) productRequestFromForm(w http.ResponseWriter, r *http.Request) (models.CreateProductRequest, bool) {
	var req models.CreateProductRequest

	req.Title = r.FormValue("title")
	req.Description = r.FormValue("description")
	req.Code = r.FormValue("code")
	req.Category = r.FormValue("category")

	priceStr := r.FormValue("price")
	stockStr := r.FormValue("stock")
	if req.Title == "" || req.Description == "" || priceStr == "" || req.Code == "" || stockStr == "" {
		respondErr(w, http.StatusBadRequest, "Required fields are missing")
		return req, false
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid price value")
		return req, false
	}
	stock, err := strconv.Atoi(stockStr)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid stock value")
		return req, false
	}
	req.Price = price
	req.Stock = stock

	if err := h.Validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.ValidationDetails(err))
		return req, false
	}
	return req, true
}

// GetProductsPaginated returns the page descriptor for the catalog. Page and
// limit come from the caller unbounded.
func (h *Handler) GetProductsPaginated(ctx context.Context, page, limit int) (models.Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 25
	}

	total, err := h.products().CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.Page{}, err
	}

	findOptions := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64((page - 1) * limit))

	cursor, err := h.products().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return models.Page{}, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return models.Page{}, err
	}

	return models.NewPage(products, total, page, limit), nil
}

func (h *Handler) invalidateProductCache(ctx context.Context, id string) {
	err := cache.DeleteCache(ctx, cache.ProductListKey, fmt.Sprintf(cache.ProductDetailPattern, id))
	if err != nil && err != cache.ErrCacheDisabled {
		h.Log.WithError(err).Warn("failed to invalidate product cache")
	}
}
