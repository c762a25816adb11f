package bootstrap

import (
	"testing"
	"time"

	userstore "github.com/kstargroup/kstarweb/internal/app/store/users"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/kstargroup/kstarweb/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func testCoreConfig(env string) *config.CoreConfig {
	return &config.CoreConfig{Env: env}
}

// testAppConfig returns a config that passes validation in dev mode.
func testAppConfig() AppConfig {
	return AppConfig{
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "kstarweb_test",
		SessionKey:       "test-session-key-0123456789ABCDEF",
		SessionName:      "kstarweb-session",
		CSRFKey:          "test-csrf-key-32-bytes-long!!!!!",
		StorageType:      "local",
		StorageLocalPath: "./uploads/resumes",
		StorageLocalURL:  "/files/resumes",
	}
}

func seedUser(t *testing.T, us *userstore.Store, email, role string) models.User {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	u, err := us.Create(ctx, models.User{
		ID:           primitive.NewObjectID(),
		FullName:     "Bootstrap Admin",
		FullNameCI:   text.Fold("Bootstrap Admin"),
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

func TestPromoteToAdmin_PromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	us := userstore.New(db)
	seeded := seedUser(t, us, "admin@kstargroup.org", models.RoleUser)

	promoted, err := us.PromoteToAdmin(ctx, "admin@kstargroup.org")
	if err != nil {
		t.Fatalf("PromoteToAdmin failed: %v", err)
	}
	if !promoted {
		t.Error("expected promotion to report a change")
	}

	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": seeded.ID}).Decode(&user); err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("expected role %q, got %q", models.RoleAdmin, user.Role)
	}
}

func TestPromoteToAdmin_AlreadyAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	us := userstore.New(db)
	seedUser(t, us, "admin@kstargroup.org", models.RoleAdmin)

	promoted, err := us.PromoteToAdmin(ctx, "admin@kstargroup.org")
	if err != nil {
		t.Fatalf("PromoteToAdmin failed: %v", err)
	}
	if promoted {
		t.Error("expected no change for an existing admin")
	}
}

func TestPromoteToAdmin_MissingUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	us := userstore.New(db)

	// The configured address may not have signed up yet; that is not an
	// error, the promotion just has nothing to do.
	promoted, err := us.PromoteToAdmin(ctx, "nobody@kstargroup.org")
	if err != nil {
		t.Fatalf("PromoteToAdmin failed: %v", err)
	}
	if promoted {
		t.Error("expected no change for an unknown email")
	}
}

func TestValidateConfig_RejectsProdDevKeys(t *testing.T) {
	coreCfg := testCoreConfig("prod")
	appCfg := testAppConfig()
	appCfg.SessionKey = devSessionKey

	if err := ValidateConfig(coreCfg, appCfg, testLogger()); err == nil {
		t.Error("expected prod validation to reject the dev session key")
	}

	appCfg = testAppConfig()
	appCfg.CSRFKey = devCSRFKey
	if err := ValidateConfig(coreCfg, appCfg, testLogger()); err == nil {
		t.Error("expected prod validation to reject the dev CSRF key")
	}
}

func TestValidateConfig_ShortCSRFKey(t *testing.T) {
	coreCfg := testCoreConfig("dev")
	appCfg := testAppConfig()
	appCfg.CSRFKey = "too-short"

	if err := ValidateConfig(coreCfg, appCfg, testLogger()); err == nil {
		t.Error("expected validation to reject a short CSRF key")
	}
}

func TestValidateConfig_UnknownStorageType(t *testing.T) {
	coreCfg := testCoreConfig("dev")
	appCfg := testAppConfig()
	appCfg.StorageType = "ftp"

	if err := ValidateConfig(coreCfg, appCfg, testLogger()); err == nil {
		t.Error("expected validation to reject an unknown storage type")
	}
}
