// internal/app/features/contact/handler.go
package contact

import (
	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	"github.com/kstargroup/kstarweb/internal/app/system/mailer"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the public contact form and the admin contact inbox.
type Handler struct {
	DB *mongo.Database
	// Mail delivers the best-effort admin notification for new submissions.
	Mail mailer.Mailer
	// InboxEmail receives the notification for each new submission.
	InboxEmail string
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

// NewHandler constructs a contact Handler.
func NewHandler(db *mongo.Database, mail mailer.Mailer, inboxEmail string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Mail:       mail,
		InboxEmail: inboxEmail,
		Log:        logger,
		ErrLog:     errLog,
	}
}
