package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"ecommerce-server/middleware"
	"ecommerce-server/utils"
)

// Handler carries the shared dependencies of all HTTP handlers
type Handler struct {
	DB        *mongo.Client
	Database  string
	Sessions  *middleware.SessionManager
	Validate  *validator.Validate
	ErrorHdlr *utils.ErrorHandler
	Log       *logrus.Logger
	UploadDir string
}

// NewHandler creates a handler with its ancillary services wired in
func NewHandler(db *mongo.Client, database string, sessions *middleware.SessionManager, log *logrus.Logger, uploadDir string) *Handler {
	return &Handler{
		DB:        db,
		Database:  database,
		Sessions:  sessions,
		Validate:  validator.New(),
		ErrorHdlr: utils.NewErrorHandler(),
		Log:       log,
		UploadDir: uploadDir,
	}
}

func (h *Handler) products() *mongo.Collection {
	return h.DB.Database(h.Database).Collection("products")
}

func (h *Handler) users() *mongo.Collection {
	return h.DB.Database(h.Database).Collection("users")
}

func (h *Handler) messages() *mongo.Collection {
	return h.DB.Database(h.Database).Collection("messages")
}
