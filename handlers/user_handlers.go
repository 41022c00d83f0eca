package handlers

import (
	"context"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecommerce-server/models"
)

// GetUsers handles GET /api/users with page/limit query parameters
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 50)

	data, err := h.GetUsersPaginated(r.Context(), page, limit)
	if err != nil {
		respondErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(w, data)
}

// GetUsersPaginated returns the page descriptor for the users collection,
// same contract as the product pagination.
func (h *Handler) GetUsersPaginated(ctx context.Context, page, limit int) (models.Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	total, err := h.users().CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.Page{}, err
	}

	findOptions := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64((page - 1) * limit))

	cursor, err := h.users().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return models.Page{}, err
	}
	defer cursor.Close(ctx)

	users := []models.UserResponse{}
	if err := cursor.All(ctx, &users); err != nil {
		return models.Page{}, err
	}

	return models.NewPage(users, total, page, limit), nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
