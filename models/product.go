package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog product stored in the products collection
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Thumbnail   string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Code        string             `json:"code" bson:"code"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Stock       int                `json:"stock" bson:"stock"`
}

// CreateProductRequest is used for product creation requests
type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	Code        string  `json:"code" validate:"required"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest enumerates the fields a partial update may touch.
// Only non-nil fields reach the store.
type UpdateProductRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Thumbnail   *string  `json:"thumbnail,omitempty"`
	Code        *string  `json:"code,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

// SetDocument builds the $set document from the fields present in the request
func (r *UpdateProductRequest) SetDocument() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Price != nil {
		set["price"] = *r.Price
	}
	if r.Thumbnail != nil {
		set["thumbnail"] = *r.Thumbnail
	}
	if r.Code != nil {
		set["code"] = *r.Code
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.Stock != nil {
		set["stock"] = *r.Stock
	}
	return set
}
