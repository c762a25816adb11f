// internal/app/features/volunteer/handler.go
package volunteer

import (
	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	"github.com/kstargroup/kstarweb/internal/app/system/mailer"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the public volunteer form and the admin registration list.
type Handler struct {
	DB *mongo.Database
	// Mail delivers the best-effort welcome message to new registrants.
	Mail   mailer.Mailer
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a volunteer Handler.
func NewHandler(db *mongo.Database, mail mailer.Mailer, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Mail:   mail,
		Log:    logger,
		ErrLog: errLog,
	}
}
