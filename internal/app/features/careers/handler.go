// internal/app/features/careers/handler.go
package careers

import (
	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	"github.com/kstargroup/kstarweb/internal/app/system/mailer"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the public careers pages: the listing, the job detail view,
// and the application form with résumé upload.
type Handler struct {
	DB      *mongo.Database
	Storage storage.Store
	Mail    mailer.Mailer
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// AdminHandler owns the back-office side: job CRUD and application
// management (status changes, résumé download, delete).
type AdminHandler struct {
	DB      *mongo.Database
	Storage storage.Store
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler constructs the public careers Handler.
func NewHandler(db *mongo.Database, store storage.Store, mail mailer.Mailer, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Storage: store,
		Mail:    mail,
		Log:     logger,
		ErrLog:  errLog,
	}
}

// NewAdminHandler constructs the admin careers handler.
func NewAdminHandler(db *mongo.Database, store storage.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		DB:      db,
		Storage: store,
		Log:     logger,
		ErrLog:  errLog,
	}
}
